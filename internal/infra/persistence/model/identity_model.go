package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. IDs are generated by the application.
type IdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tokens []IdentityTokenModel `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// IdentityTokenModel mirrors the 'identity_tokens' table. One row per live token;
// the serial id keeps issuance order.
type IdentityTokenModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;index"`
	Token      string    `gorm:"type:text;uniqueIndex;not null"`
	Access     string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityTokenModel) TableName() string {
	return "identity_tokens"
}
