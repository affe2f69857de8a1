// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"todoapi/internal/domain/entity"
	"todoapi/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrIdentityEmailExists is returned by Create when the email is already registered.
	ErrIdentityEmailExists = errors.New("identity email already exists")
)

// IdentityRepository defines persistence for identities and their live token lists.
type IdentityRepository interface {
	// FindByID retrieves an identity with its tokens in issuance order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves an identity by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// Create persists a new identity. ID, CreatedAt and UpdatedAt are filled in when empty.
	Create(ctx context.Context, identity *entity.Identity) error

	// AppendToken adds one token to the end of the identity's token list.
	AppendToken(ctx context.Context, identityID uuid.UUID, token entity.IdentityToken) error

	// RemoveToken deletes every entry equal to token. Removing an absent token is not an error.
	RemoveToken(ctx context.Context, identityID uuid.UUID, token string) error

	// RemoveOldestTokens trims the list so that at most keep tokens remain, dropping the oldest first.
	RemoveOldestTokens(ctx context.Context, identityID uuid.UUID, keep int) error
}
