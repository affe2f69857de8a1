package postgres

import (
	"context"

	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	"todoapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// todoRepository implements repository.TodoRepository. Every statement filters on creator_id.
type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}

	todoM := fromTodoDomain(todo)
	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

func (repo *todoRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Todo, error) {
	var todoMs []model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at ASC").
		Find(&todoMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list todos")
	}

	todos := make([]*entity.Todo, 0, len(todoMs))
	for i := range todoMs {
		todos = append(todos, toTodoDomain(&todoMs[i]))
	}

	return todos, nil
}

func (repo *todoRepository) FindByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Todo, error) {
	var todoM model.TodoModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", id, creatorID).
		First(&todoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find todo")
	}

	return toTodoDomain(&todoM), nil
}

// Update writes text and completion state, including zero values.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ? AND creator_id = ?", todo.ID, todo.CreatorID).
		Updates(map[string]any{
			"text":         todo.Text,
			"completed":    todo.Completed,
			"completed_at": todo.CompletedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// DeleteByIDAndCreator deletes with RETURNING so the removed row comes back in one round trip.
func (repo *todoRepository) DeleteByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Todo, error) {
	var deleted []model.TodoModel
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Delete(&deleted)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}
	if len(deleted) == 0 {
		return nil, repository.ErrTodoNotFound
	}

	return toTodoDomain(&deleted[0]), nil
}

func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:          data.ID,
		Text:        data.Text,
		Completed:   data.Completed,
		CompletedAt: data.CompletedAt,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		Text:        data.Text,
		Completed:   data.Completed,
		CompletedAt: data.CompletedAt,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
