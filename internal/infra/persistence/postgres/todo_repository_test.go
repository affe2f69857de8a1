package postgres

import (
	"context"
	"testing"
	"time"

	"todoapi/internal/domain/entity"
	"todoapi/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var todoColumns = []string{"id", "text", "completed", "completed_at", "creator_id", "created_at", "updated_at"}

func TestTodoRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectExec(`INSERT INTO "todos"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	todo := &entity.Todo{Text: "walk the dog", CreatorID: uuid.New()}
	require.NoError(t, repo.Create(context.Background(), todo))
	assert.NotEqual(t, uuid.Nil, todo.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_ListByCreator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	ownerID := uuid.New()
	now := time.Now()
	completedAt := now.UnixMilli()

	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE creator_id = \$1 ORDER BY created_at ASC`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow(uuid.NewString(), "first", false, nil, ownerID.String(), now, now).
			AddRow(uuid.NewString(), "second", true, completedAt, ownerID.String(), now, now))

	todos, err := repo.ListByCreator(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "first", todos[0].Text)
	assert.Nil(t, todos[0].CompletedAt)
	assert.True(t, todos[1].Completed)
	require.NotNil(t, todos[1].CompletedAt)
	assert.Equal(t, completedAt, *todos[1].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_FindByIDAndCreator_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE id = \$1 AND creator_id = \$2`).
		WillReturnRows(sqlmock.NewRows(todoColumns))

	todo, err := repo.FindByIDAndCreator(context.Background(), uuid.New(), uuid.New())
	assert.Nil(t, todo)
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Update(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{name: "updated", rowsAffected: 1},
		{name: "other owner or missing", rowsAffected: 0, wantErr: repository.ErrTodoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewTodoRepository(db)

			mock.ExpectExec(`UPDATE "todos" SET .* WHERE id = \$\d+ AND creator_id = \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.Update(context.Background(), &entity.Todo{ID: uuid.New(), CreatorID: uuid.New(), Text: "x"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTodoRepository_DeleteByIDAndCreator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	id := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`DELETE FROM "todos" WHERE id = \$1 AND creator_id = \$2 RETURNING \*`).
		WithArgs(id, ownerID).
		WillReturnRows(sqlmock.NewRows(todoColumns).AddRow(id.String(), "gone", false, nil, ownerID.String(), now, now))

	todo, err := repo.DeleteByIDAndCreator(context.Background(), id, ownerID)
	require.NoError(t, err)
	assert.Equal(t, id, todo.ID)
	assert.Equal(t, "gone", todo.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_DeleteByIDAndCreator_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTodoRepository(db)

	mock.ExpectQuery(`DELETE FROM "todos" WHERE id = \$1 AND creator_id = \$2 RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(todoColumns))

	todo, err := repo.DeleteByIDAndCreator(context.Background(), uuid.New(), uuid.New())
	assert.Nil(t, todo)
	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
