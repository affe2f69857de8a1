// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todoapi/internal/delivery/api/middleware"
	"todoapi/internal/delivery/api/router/handler"
	"todoapi/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TodoHandler    *handler.TodoHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	todoHandler    *handler.TodoHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		todoHandler:    params.TodoHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Public identity routes
	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
	}

	// Routes for the authenticated identity
	meGroup := usersGroup.Group("/me", r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.userHandler.Me)
		meGroup.DELETE("/token", r.userHandler.Logout)
	}

	// Todos are always scoped to the authenticated identity
	todosGroup := e.Group("/todos", r.authMiddleware.Authenticate)
	{
		todosGroup.POST("", r.todoHandler.Create)
		todosGroup.GET("", r.todoHandler.List)
		todosGroup.GET("/:id", r.todoHandler.Get)
		todosGroup.PATCH("/:id", r.todoHandler.Update)
		todosGroup.DELETE("/:id", r.todoHandler.Delete)
	}
}
