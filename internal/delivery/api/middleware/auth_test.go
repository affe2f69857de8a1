package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/constants"
	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	mockUsecase "todoapi/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), authUC
}

func runAuthenticate(mw *AuthMiddleware, token string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if token != "" {
		req.Header.Set(constants.HeaderXAuth, token)
	}
	rec := httptest.NewRecorder()

	return rec, mw.Authenticate(next)(e.NewContext(req, rec))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	called := false

	rec, err := runAuthenticate(mw, "", func(c echo.Context) error {
		called = true

		return nil
	})

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	mw, authUC := newTestAuthMiddleware(t)
	authUC.EXPECT().ResolveToken(mock.Anything, "revoked").Return(nil, domainerrors.ErrUnauthorized).Once()
	called := false

	rec, err := runAuthenticate(mw, "revoked", func(c echo.Context) error {
		called = true

		return nil
	})

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthMiddleware_StorageErrorIsNotUnauthorized(t *testing.T) {
	mw, authUC := newTestAuthMiddleware(t)
	authUC.EXPECT().ResolveToken(mock.Anything, "live").Return(nil, errors.New("connection reset")).Once()

	_, err := runAuthenticate(mw, "live", func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAuthMiddleware_StoresIdentity(t *testing.T) {
	mw, authUC := newTestAuthMiddleware(t)
	identity := &entity.Identity{ID: uuid.New(), Email: "andrew@example.com"}
	authUC.EXPECT().ResolveToken(mock.Anything, "live").Return(identity, nil).Once()

	rec, err := runAuthenticate(mw, "live", func(c echo.Context) error {
		got, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		assert.Same(t, identity, got)

		token, ok := deliverycontext.GetToken(c)
		require.True(t, ok)
		assert.Equal(t, "live", token)

		assert.Same(t, identity, deliverycontext.GetIdentityFromContext(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
