package handler

import (
	"net/http"
	"testing"

	"todoapi/internal/domain/constants"
	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	mockUsecase "todoapi/internal/mocks/usecase"
	"todoapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewUserHandler(UserHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestUserHandler_Register(t *testing.T) {
	h, authUC := newTestUserHandler(t)
	identity := &entity.Identity{ID: uuid.New(), Email: "andrew@example.com", PasswordHash: "secret-hash"}

	authUC.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Email: "andrew@example.com", Password: "userOnePass"}).
		Return(&usecase.AuthOutput{Identity: identity, Token: "signed-token"}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/users", `{"email":"andrew@example.com","password":"userOnePass"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed-token", rec.Header().Get(constants.HeaderXAuth))
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	var body IdentityResponse
	decodeData(t, rec, &body)
	assert.Equal(t, IdentityResponse{ID: identity.ID, Email: identity.Email}, body)
}

func TestUserHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "invalid input", err: domainerrors.ErrInvalidInput.WithDetails("invalid email"), wantCode: "INVALID_INPUT"},
		{name: "duplicate email", err: domainerrors.ErrEmailInUse, wantCode: "EMAIL_IN_USE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newTestUserHandler(t)
			authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			c, rec := newTestContext(http.MethodPost, "/users", `{"email":"andrew@example.com","password":"userOnePass"}`)
			require.NoError(t, h.Register(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
			assert.Empty(t, rec.Header().Get(constants.HeaderXAuth))
		})
	}
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodPost, "/users", `{"email":`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeErrorCode(t, rec))
}

func TestUserHandler_Login(t *testing.T) {
	h, authUC := newTestUserHandler(t)
	identity := &entity.Identity{ID: uuid.New(), Email: "andrew@example.com"}

	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "andrew@example.com", Password: "userOnePass"}).
		Return(&usecase.AuthOutput{Identity: identity, Token: "login-token"}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/users/login", `{"email":"andrew@example.com","password":"userOnePass"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "login-token", rec.Header().Get(constants.HeaderXAuth))
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newTestUserHandler(t)
	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

	c, rec := newTestContext(http.MethodPost, "/users/login", `{"email":"andrew@example.com","password":"nope"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeErrorCode(t, rec))
	assert.Empty(t, rec.Header().Get(constants.HeaderXAuth))
}

func TestUserHandler_Me(t *testing.T) {
	h, _ := newTestUserHandler(t)
	identity := &entity.Identity{ID: uuid.New(), Email: "andrew@example.com"}

	c, rec := newTestContext(http.MethodGet, "/users/me", "")
	withIdentity(c, identity, "live")
	require.NoError(t, h.Me(c))

	var body IdentityResponse
	decodeData(t, rec, &body)
	assert.Equal(t, identity.ID, body.ID)
	assert.Equal(t, identity.Email, body.Email)
}

func TestUserHandler_Logout(t *testing.T) {
	h, authUC := newTestUserHandler(t)
	identity := &entity.Identity{ID: uuid.New(), Email: "andrew@example.com"}
	authUC.EXPECT().RevokeToken(mock.Anything, identity, "live").Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/users/me/token", "")
	withIdentity(c, identity, "live")
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_WithoutIdentity(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodGet, "/users/me", "")
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}
