package memory

import (
	"context"

	"todoapi/internal/domain/entity"
	"todoapi/internal/domain/repository"

	"github.com/google/uuid"
)

type identityRepository struct {
	store  *Store
	locked bool
}

// NewIdentityRepository returns an IdentityRepository over store.
func NewIdentityRepository(store *Store) repository.IdentityRepository {
	return &identityRepository{store: store}
}

func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var found *entity.Identity
	err := repo.store.view(ctx, repo.locked, func(st *state) error {
		identity, ok := st.identities[id]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		found = cloneIdentity(identity)

		return nil
	})

	return found, err
}

func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var found *entity.Identity
	err := repo.store.view(ctx, repo.locked, func(st *state) error {
		id, ok := st.emails[email]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		found = cloneIdentity(st.identities[id])

		return nil
	})

	return found, err
}

func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	return repo.store.update(ctx, repo.locked, func(st *state) error {
		if _, exists := st.emails[identity.Email]; exists {
			return repository.ErrIdentityEmailExists
		}

		if identity.ID == uuid.Nil {
			identity.ID = uuid.New()
		}
		now := repo.store.now()
		identity.CreatedAt = now
		identity.UpdatedAt = now

		stored := cloneIdentity(identity)
		stored.Tokens = nil
		st.identities[identity.ID] = stored
		st.emails[identity.Email] = identity.ID

		return nil
	})
}

func (repo *identityRepository) AppendToken(ctx context.Context, identityID uuid.UUID, token entity.IdentityToken) error {
	return repo.store.update(ctx, repo.locked, func(st *state) error {
		identity, ok := st.identities[identityID]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		identity.AddToken(token.Token, token.Access)

		return nil
	})
}

func (repo *identityRepository) RemoveToken(ctx context.Context, identityID uuid.UUID, token string) error {
	return repo.store.update(ctx, repo.locked, func(st *state) error {
		if identity, ok := st.identities[identityID]; ok {
			identity.RemoveToken(token)
		}

		return nil
	})
}

func (repo *identityRepository) RemoveOldestTokens(ctx context.Context, identityID uuid.UUID, keep int) error {
	if keep < 0 {
		keep = 0
	}

	return repo.store.update(ctx, repo.locked, func(st *state) error {
		identity, ok := st.identities[identityID]
		if !ok || len(identity.Tokens) <= keep {
			return nil
		}
		identity.Tokens = append([]entity.IdentityToken(nil), identity.Tokens[len(identity.Tokens)-keep:]...)

		return nil
	})
}
