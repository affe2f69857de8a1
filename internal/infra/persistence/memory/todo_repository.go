package memory

import (
	"context"
	"sort"

	"todoapi/internal/domain/entity"
	"todoapi/internal/domain/repository"

	"github.com/google/uuid"
)

type todoRepository struct {
	store  *Store
	locked bool
}

// NewTodoRepository returns a TodoRepository over store.
func NewTodoRepository(store *Store) repository.TodoRepository {
	return &todoRepository{store: store}
}

// owned returns the record only when it belongs to creatorID.
func (st *state) owned(id, creatorID uuid.UUID) (*todoRecord, bool) {
	rec, ok := st.todos[id]
	if !ok || rec.todo.CreatorID != creatorID {
		return nil, false
	}

	return rec, true
}

func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	return repo.store.update(ctx, repo.locked, func(st *state) error {
		if todo.ID == uuid.Nil {
			todo.ID = uuid.New()
		}
		now := repo.store.now()
		todo.CreatedAt = now
		todo.UpdatedAt = now

		st.seq++
		st.todos[todo.ID] = &todoRecord{todo: *cloneTodo(todo), seq: st.seq}

		return nil
	})
}

func (repo *todoRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Todo, error) {
	var records []*todoRecord
	err := repo.store.view(ctx, repo.locked, func(st *state) error {
		for _, rec := range st.todos {
			if rec.todo.CreatorID == creatorID {
				records = append(records, &todoRecord{todo: *cloneTodo(&rec.todo), seq: rec.seq})
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })

	todos := make([]*entity.Todo, 0, len(records))
	for _, rec := range records {
		todos = append(todos, &rec.todo)
	}

	return todos, nil
}

func (repo *todoRepository) FindByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Todo, error) {
	var found *entity.Todo
	err := repo.store.view(ctx, repo.locked, func(st *state) error {
		rec, ok := st.owned(id, creatorID)
		if !ok {
			return repository.ErrTodoNotFound
		}
		found = cloneTodo(&rec.todo)

		return nil
	})

	return found, err
}

func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	return repo.store.update(ctx, repo.locked, func(st *state) error {
		rec, ok := st.owned(todo.ID, todo.CreatorID)
		if !ok {
			return repository.ErrTodoNotFound
		}

		updated := cloneTodo(todo)
		rec.todo.Text = updated.Text
		rec.todo.Completed = updated.Completed
		rec.todo.CompletedAt = updated.CompletedAt
		rec.todo.UpdatedAt = repo.store.now()
		todo.UpdatedAt = rec.todo.UpdatedAt

		return nil
	})
}

func (repo *todoRepository) DeleteByIDAndCreator(ctx context.Context, id, creatorID uuid.UUID) (*entity.Todo, error) {
	var deleted *entity.Todo
	err := repo.store.update(ctx, repo.locked, func(st *state) error {
		rec, ok := st.owned(id, creatorID)
		if !ok {
			return repository.ErrTodoNotFound
		}
		deleted = cloneTodo(&rec.todo)
		delete(st.todos, id)

		return nil
	})

	return deleted, err
}
