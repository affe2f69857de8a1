package service

import (
	"todoapi/internal/errors"

	"github.com/google/uuid"
)

// ErrTokenVerification is the single failure returned by TokenCodec.Verify, whatever
// part of the token was wrong.
var ErrTokenVerification = errors.New("token verification failed")

// TokenPayload is the data bound into a signed token.
type TokenPayload struct {
	OwnerID uuid.UUID
	Purpose string
}

// TokenCodec signs payloads into opaque tokens and verifies them back.
type TokenCodec interface {
	// Issue signs payload with the process-wide secret.
	Issue(payload TokenPayload) (string, error)

	// Verify checks structure and signature and returns the embedded payload.
	Verify(token string) (*TokenPayload, error)
}
