package usecase

import (
	"context"

	"todoapi/internal/domain/entity"

	"github.com/google/uuid"
)

// TodoPatch lists the fields a client may change. Nil means "not sent".
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// TodoUsecase defines owner-scoped todo operations. Ids are the raw path values;
// a malformed id behaves like a missing todo.
type TodoUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, text string) (*entity.Todo, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error)
	Get(ctx context.Context, ownerID uuid.UUID, id string) (*entity.Todo, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id string) (*entity.Todo, error)

	// Update applies patch. Completion is set only when Completed is true;
	// any other value clears both completed and completedAt.
	Update(ctx context.Context, ownerID uuid.UUID, id string, patch TodoPatch) (*entity.Todo, error)
}
