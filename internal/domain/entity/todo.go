package entity

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a single task owned by exactly one identity.
type Todo struct {
	ID          uuid.UUID
	Text        string
	Completed   bool
	CompletedAt *int64    // Milliseconds since epoch, set only while Completed is true.
	CreatorID   uuid.UUID // Owning identity.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MarkCompleted sets the completion state. Completing stamps CompletedAt with now,
// anything else clears both fields.
func (t *Todo) MarkCompleted(completed bool, now time.Time) {
	if completed {
		ms := now.UnixMilli()
		t.Completed = true
		t.CompletedAt = &ms

		return
	}

	t.Completed = false
	t.CompletedAt = nil
}
