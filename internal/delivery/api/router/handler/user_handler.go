// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"todoapi/internal/delivery/api/response"
	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/constants"
	"todoapi/internal/domain/entity"
	"todoapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for identity-related handlers.
type UserHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// CredentialsRequest is the body of POST /users and POST /users/login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityResponse is the public view of an identity. It never carries the
// password hash or the token list.
type IdentityResponse struct {
	ID    uuid.UUID `json:"_id"`
	Email string    `json:"email"`
}

func toIdentityResponse(identity *entity.Identity) IdentityResponse {
	return IdentityResponse{ID: identity.ID, Email: identity.Email}
}

// Register handles POST /users. The new token is returned in the x-auth header.
func (h *UserHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(constants.HeaderXAuth, output.Token)

	return response.Success(c, http.StatusOK, toIdentityResponse(output.Identity))
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(constants.HeaderXAuth, output.Token)

	return response.Success(c, http.StatusOK, toIdentityResponse(output.Identity))
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity))
}

// Logout handles DELETE /users/me/token, revoking the token that authenticated the request.
func (h *UserHandler) Logout(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}
	token, _ := deliverycontext.GetToken(c)

	if err := h.authUC.RevokeToken(c.Request().Context(), identity, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
