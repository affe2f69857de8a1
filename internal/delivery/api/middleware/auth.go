package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/constants"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware gates routes on the x-auth header.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate resolves the x-auth token to its identity. Missing, forged and revoked
// tokens answer 401 with an empty body and the handler is never invoked.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(constants.HeaderXAuth)
		if token == "" {
			return c.NoContent(http.StatusUnauthorized)
		}

		ctx := c.Request().Context()
		identity, err := m.authUC.ResolveToken(ctx, token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return c.NoContent(http.StatusUnauthorized)
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity, token)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(ctx, identity)))

		return next(c)
	}
}
