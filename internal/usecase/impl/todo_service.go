package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	"todoapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// todoService implements the TodoUsecase interface. Every repository call is
// scoped by the owner id handed in by the delivery layer.
type todoService struct {
	todoRepo repository.TodoRepository
	now      func() time.Time
	logger   *slog.Logger
}

// TodoServiceParams holds dependencies for TodoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TodoRepo repository.TodoRepository
	Logger   *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		todoRepo: params.TodoRepo,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *todoService) Create(ctx context.Context, ownerID uuid.UUID, text string) (*entity.Todo, error) {
	text, err := normalizeTodoText(text)
	if err != nil {
		return nil, err
	}

	todo := &entity.Todo{
		ID:        uuid.New(),
		Text:      text,
		CreatorID: ownerID,
	}
	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create todo")
	}

	return todo, nil
}

func (srv *todoService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	todos, err := srv.todoRepo.ListByCreator(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}
	if todos == nil {
		todos = []*entity.Todo{}
	}

	return todos, nil
}

func (srv *todoService) Get(ctx context.Context, ownerID uuid.UUID, id string) (*entity.Todo, error) {
	todoID, err := parseTodoID(id)
	if err != nil {
		return nil, err
	}

	todo, err := srv.todoRepo.FindByIDAndCreator(ctx, todoID, ownerID)
	if err != nil {
		return nil, mapTodoError(err, "failed to find todo")
	}

	return todo, nil
}

func (srv *todoService) Delete(ctx context.Context, ownerID uuid.UUID, id string) (*entity.Todo, error) {
	todoID, err := parseTodoID(id)
	if err != nil {
		return nil, err
	}

	todo, err := srv.todoRepo.DeleteByIDAndCreator(ctx, todoID, ownerID)
	if err != nil {
		return nil, mapTodoError(err, "failed to delete todo")
	}

	return todo, nil
}

func (srv *todoService) Update(ctx context.Context, ownerID uuid.UUID, id string, patch usecase.TodoPatch) (*entity.Todo, error) {
	todoID, err := parseTodoID(id)
	if err != nil {
		return nil, err
	}

	var text string
	if patch.Text != nil {
		if text, err = normalizeTodoText(*patch.Text); err != nil {
			return nil, err
		}
	}

	todo, err := srv.todoRepo.FindByIDAndCreator(ctx, todoID, ownerID)
	if err != nil {
		return nil, mapTodoError(err, "failed to find todo")
	}

	if patch.Text != nil {
		todo.Text = text
	}
	todo.MarkCompleted(patch.Completed != nil && *patch.Completed, srv.now())

	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		return nil, mapTodoError(err, "failed to update todo")
	}

	return todo, nil
}

// parseTodoID treats a malformed id as a missing todo.
func parseTodoID(id string) (uuid.UUID, error) {
	todoID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTodoNotFound
	}

	return todoID, nil
}

func normalizeTodoText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("text is required")
	}

	return text, nil
}

func mapTodoError(err error, message string) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return domainerrors.ErrTodoNotFound
	}

	return errors.Wrap(err, message)
}
