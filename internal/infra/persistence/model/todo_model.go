package model

import (
	"time"

	"github.com/google/uuid"
)

// TodoModel mirrors the 'todos' table. completed_at holds milliseconds since epoch.
type TodoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Text        string    `gorm:"type:text;not null"`
	Completed   bool      `gorm:"not null"`
	CompletedAt *int64
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}
