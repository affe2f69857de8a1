package impl

import (
	"context"
	"testing"
	"time"

	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	mockRepo "todoapi/internal/mocks/repository"
	"todoapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func createTestTodoService(t *testing.T) (usecase.TodoUsecase, *mockRepo.MockTodoRepository) {
	todoRepo := mockRepo.NewMockTodoRepository(t)
	svc := NewTodoService(TodoServiceParams{TodoRepo: todoRepo, Logger: newDiscardLogger()})
	svc.(*todoService).now = func() time.Time { return fixedNow }

	return svc, todoRepo
}

func ptr[T any](v T) *T {
	return &v
}

func TestTodoService_Create(t *testing.T) {
	svc, todoRepo := createTestTodoService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	todoRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.Text == "Walk the dog" && todo.CreatorID == ownerID && !todo.Completed && todo.CompletedAt == nil
		})).
		Return(nil).Once()

	todo, err := svc.Create(ctx, ownerID, "  Walk the dog  ")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, todo.ID)
	assert.Equal(t, "Walk the dog", todo.Text)
	assert.Equal(t, ownerID, todo.CreatorID)
}

func TestTodoService_Create_RejectsBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		svc, _ := createTestTodoService(t)

		todo, err := svc.Create(context.Background(), uuid.New(), text)

		assert.Nil(t, todo)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestTodoService_List_EmptyIsNotNil(t *testing.T) {
	svc, todoRepo := createTestTodoService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	todoRepo.EXPECT().ListByCreator(ctx, ownerID).Return(nil, nil).Once()

	todos, err := svc.List(ctx, ownerID)

	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoService_Get(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	todoID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, todoRepo := createTestTodoService(t)
		stored := &entity.Todo{ID: todoID, Text: "First", CreatorID: ownerID}
		todoRepo.EXPECT().FindByIDAndCreator(ctx, todoID, ownerID).Return(stored, nil).Once()

		todo, err := svc.Get(ctx, ownerID, todoID.String())

		require.NoError(t, err)
		assert.Equal(t, stored, todo)
	})

	t.Run("other owner looks missing", func(t *testing.T) {
		svc, todoRepo := createTestTodoService(t)
		todoRepo.EXPECT().FindByIDAndCreator(ctx, todoID, ownerID).Return(nil, repository.ErrTodoNotFound).Once()

		_, err := svc.Get(ctx, ownerID, todoID.String())

		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := createTestTodoService(t)

		_, err := svc.Get(ctx, ownerID, "123")

		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, todoRepo := createTestTodoService(t)
		todoRepo.EXPECT().FindByIDAndCreator(ctx, todoID, ownerID).Return(nil, errors.New("connection reset")).Once()

		_, err := svc.Get(ctx, ownerID, todoID.String())

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})
}

func TestTodoService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	todoID := uuid.New()

	t.Run("returns deleted todo", func(t *testing.T) {
		svc, todoRepo := createTestTodoService(t)
		stored := &entity.Todo{ID: todoID, Text: "First", CreatorID: ownerID}
		todoRepo.EXPECT().DeleteByIDAndCreator(ctx, todoID, ownerID).Return(stored, nil).Once()

		todo, err := svc.Delete(ctx, ownerID, todoID.String())

		require.NoError(t, err)
		assert.Equal(t, todoID, todo.ID)
	})

	t.Run("missing", func(t *testing.T) {
		svc, todoRepo := createTestTodoService(t)
		todoRepo.EXPECT().DeleteByIDAndCreator(ctx, todoID, ownerID).Return(nil, repository.ErrTodoNotFound).Once()

		_, err := svc.Delete(ctx, ownerID, todoID.String())

		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := createTestTodoService(t)

		_, err := svc.Delete(ctx, ownerID, "not-a-uuid")

		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})
}

func TestTodoService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	todoID := uuid.New()
	completedAt := fixedNow.Add(-time.Hour).UnixMilli()

	tests := []struct {
		name            string
		stored          entity.Todo
		patch           usecase.TodoPatch
		wantText        string
		wantCompleted   bool
		wantCompletedAt *int64
	}{
		{
			name:            "complete sets timestamp",
			stored:          entity.Todo{ID: todoID, Text: "First", CreatorID: ownerID},
			patch:           usecase.TodoPatch{Text: ptr("Updated"), Completed: ptr(true)},
			wantText:        "Updated",
			wantCompleted:   true,
			wantCompletedAt: ptr(fixedNow.UnixMilli()),
		},
		{
			name:          "uncomplete clears timestamp",
			stored:        entity.Todo{ID: todoID, Text: "First", Completed: true, CompletedAt: &completedAt, CreatorID: ownerID},
			patch:         usecase.TodoPatch{Completed: ptr(false)},
			wantText:      "First",
			wantCompleted: false,
		},
		{
			name:          "omitted completed clears completion",
			stored:        entity.Todo{ID: todoID, Text: "First", Completed: true, CompletedAt: &completedAt, CreatorID: ownerID},
			patch:         usecase.TodoPatch{Text: ptr("Renamed")},
			wantText:      "Renamed",
			wantCompleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, todoRepo := createTestTodoService(t)
			stored := tt.stored
			todoRepo.EXPECT().FindByIDAndCreator(ctx, todoID, ownerID).Return(&stored, nil).Once()
			todoRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Todo")).Return(nil).Once()

			todo, err := svc.Update(ctx, ownerID, todoID.String(), tt.patch)

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, todo.Text)
			assert.Equal(t, tt.wantCompleted, todo.Completed)
			assert.Equal(t, tt.wantCompletedAt, todo.CompletedAt)
		})
	}
}

func TestTodoService_Update_Errors(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	todoID := uuid.New()

	t.Run("blank text", func(t *testing.T) {
		svc, _ := createTestTodoService(t)

		_, err := svc.Update(ctx, ownerID, todoID.String(), usecase.TodoPatch{Text: ptr("  ")})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := createTestTodoService(t)

		_, err := svc.Update(ctx, ownerID, "123abc", usecase.TodoPatch{Completed: ptr(true)})

		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		svc, todoRepo := createTestTodoService(t)
		todoRepo.EXPECT().
			FindByIDAndCreator(ctx, todoID, ownerID).
			Return(&entity.Todo{ID: todoID, Text: "First", CreatorID: ownerID}, nil).Once()
		todoRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrTodoNotFound).Once()

		_, err := svc.Update(ctx, ownerID, todoID.String(), usecase.TodoPatch{Completed: ptr(true)})

		assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
	})
}
