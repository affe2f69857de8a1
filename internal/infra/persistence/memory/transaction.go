package memory

import (
	"context"

	"todoapi/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) IdentityRepo() repository.IdentityRepository {
	return &identityRepository{store: f.store, locked: true}
}

func (f *repositoryFactory) TodoRepo() repository.TodoRepository {
	return &todoRepository{store: f.store, locked: true}
}

// NewTransactionManager returns a TransactionManager that serializes transactions
// on the store's write lock and restores a snapshot when fn fails.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.state.clone()
	committed := false
	defer func() {
		if !committed {
			tm.store.state = snapshot
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		return err
	}
	committed = true

	return nil
}
