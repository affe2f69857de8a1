package repository

import (
	"context"

	"todoapi/internal/domain/entity"
	"todoapi/internal/errors"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when no todo matches both the id and the owner.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines owner-scoped persistence for todos. Every lookup is filtered
// by creator, so a todo owned by someone else is indistinguishable from a missing one.
type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error

	// ListByCreator returns the owner's todos ordered by creation time.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Todo, error)

	FindByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Todo, error)

	// Update stores Text, Completed and CompletedAt of a todo matched by id and creator.
	Update(ctx context.Context, todo *entity.Todo) error

	// DeleteByIDAndCreator removes the todo and returns it as it was before deletion.
	DeleteByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Todo, error)
}
