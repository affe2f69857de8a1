package handler

import (
	"log/slog"
	"net/http"

	"todoapi/internal/delivery/api/response"
	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/entity"
	"todoapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TodoHandlerParams holds dependencies for TodoHandler, injected by Fx.
type TodoHandlerParams struct {
	fx.In

	TodoUC usecase.TodoUsecase
	Logger *slog.Logger
}

// TodoHandler serves the owner-scoped /todos routes.
type TodoHandler struct {
	todoUC usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler.
func NewTodoHandler(params TodoHandlerParams) *TodoHandler {
	return &TodoHandler{
		todoUC: params.TodoUC,
		logger: params.Logger,
	}
}

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

// UpdateTodoRequest is the body of PATCH /todos/:id. Other fields are ignored.
type UpdateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// TodoResponse is the wire form of a todo.
type TodoResponse struct {
	ID          uuid.UUID `json:"_id"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	CompletedAt *int64    `json:"completedAt"`
	CreatorID   uuid.UUID `json:"_creator"`
}

// TodoEnvelope wraps a single todo as {"todo": ...}.
type TodoEnvelope struct {
	Todo TodoResponse `json:"todo"`
}

// TodoListResponse wraps the owner's todos as {"todos": [...]}.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

func toTodoResponse(todo *entity.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		Text:        todo.Text,
		Completed:   todo.Completed,
		CompletedAt: todo.CompletedAt,
		CreatorID:   todo.CreatorID,
	}
}

// Create handles POST /todos.
func (h *TodoHandler) Create(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	todo, err := h.todoUC.Create(c.Request().Context(), identity.ID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTodoResponse(todo))
}

// List handles GET /todos.
func (h *TodoHandler) List(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	todos, err := h.todoUC.List(c.Request().Context(), identity.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := TodoListResponse{Todos: make([]TodoResponse, 0, len(todos))}
	for _, todo := range todos {
		out.Todos = append(out.Todos, toTodoResponse(todo))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get handles GET /todos/:id.
func (h *TodoHandler) Get(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	todo, err := h.todoUC.Get(c.Request().Context(), identity.ID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TodoEnvelope{Todo: toTodoResponse(todo)})
}

// Update handles PATCH /todos/:id.
func (h *TodoHandler) Update(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var req UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	todo, err := h.todoUC.Update(c.Request().Context(), identity.ID, c.Param("id"), usecase.TodoPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TodoEnvelope{Todo: toTodoResponse(todo)})
}

// Delete handles DELETE /todos/:id and returns the removed todo.
func (h *TodoHandler) Delete(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	todo, err := h.todoUC.Delete(c.Request().Context(), identity.ID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TodoEnvelope{Todo: toTodoResponse(todo)})
}
