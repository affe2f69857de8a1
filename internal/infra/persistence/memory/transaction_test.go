package memory

import (
	"context"
	"testing"

	"todoapi/internal/domain/entity"
	"todoapi/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	store := NewStore()
	txManager := NewTransactionManager(store)
	identities := NewIdentityRepository(store)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity := &entity.Identity{Email: "kept@example.com", PasswordHash: "hash"}
		if err := factory.IdentityRepo().Create(ctx, identity); err != nil {
			return err
		}

		return factory.IdentityRepo().AppendToken(ctx, identity.ID, entity.IdentityToken{Token: "t", Access: entity.TokenAccessAuth})
	})
	require.NoError(t, err)

	kept, err := identities.FindByEmail(ctx, "kept@example.com")
	require.NoError(t, err)
	assert.True(t, kept.HasToken("t"))

	boom := errors.New("boom")
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.IdentityRepo().Create(ctx, &entity.Identity{Email: "dropped@example.com", PasswordHash: "hash"}); err != nil {
			return err
		}
		if err := factory.IdentityRepo().RemoveToken(ctx, kept.ID, "t"); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = identities.FindByEmail(ctx, "dropped@example.com")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)

	kept, err = identities.FindByEmail(ctx, "kept@example.com")
	require.NoError(t, err)
	assert.True(t, kept.HasToken("t"), "rolled back removal")
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	store := NewStore()
	txManager := NewTransactionManager(store)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.TodoRepo().Create(ctx, &entity.Todo{Text: "x"})
			panic("boom")
		})
	})

	// Lock released and state restored.
	todos, err := NewTodoRepository(store).ListByCreator(ctx, entity.Todo{}.CreatorID)
	require.NoError(t, err)
	assert.Empty(t, todos)
}
