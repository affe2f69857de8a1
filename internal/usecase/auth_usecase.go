// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"todoapi/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for an identity to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the authenticated identity and its freshly issued token.
type AuthOutput struct {
	Identity *entity.Identity
	Token    string
}

// AuthUsecase defines credential and token operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an identity and issues its first token.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a new token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// IssueToken signs a new auth token and appends it to the identity's live list.
	IssueToken(ctx context.Context, identity *entity.Identity) (string, error)

	// ResolveToken returns the identity owning a live token, or ErrUnauthorized.
	ResolveToken(ctx context.Context, token string) (*entity.Identity, error)

	// RevokeToken removes token from the identity's live list. Revoking twice is a no-op.
	RevokeToken(ctx context.Context, identity *entity.Identity, token string) error
}
