package context

import (
	"context"

	"todoapi/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	keyIdentity contextKey = "identity"
	keyToken    contextKey = "token"
)

// SetIdentity stores the authenticated identity and its token in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity, token string) {
	c.Set(string(keyIdentity), identity)
	c.Set(string(keyToken), token)
}

// GetIdentity returns the identity set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(keyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}

// GetToken returns the token presented by the authenticated request.
func GetToken(c echo.Context) (string, bool) {
	token, ok := c.Get(string(keyToken)).(string)

	return token, ok && token != ""
}

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, identity)
}

// GetIdentityFromContext extracts the authenticated identity from context.Context.
// If not found, returns nil.
func GetIdentityFromContext(ctx context.Context) *entity.Identity {
	identity, _ := valueFrom[*entity.Identity](ctx, keyIdentity)

	return identity
}
