package services

import (
	"context"

	"github.com/karales/todo_backend/internal/core/domain"
	"github.com/karales/todo_backend/internal/dto"
)

// TodoSvcFacade defines the ownership-scoped todo operations. The userID
// argument always comes from the verified token, never from the request
// body.
type TodoSvcFacade interface {
	// CreateTodo inserts a todo owned by the caller.
	CreateTodo(ctx context.Context, userID string, req dto.CreateTodoRequest) (*domain.Todo, error)

	// ListTodos returns the caller's todos, optionally filtered by title
	// keyword and completion status.
	ListTodos(ctx context.Context, userID string, params dto.ListTodosParams) ([]domain.Todo, error)

	// GetTodoByID returns the todo only if the caller owns it.
	GetTodoByID(ctx context.Context, userID, todoID string) (*domain.Todo, error)

	// UpdateTodo applies a partial update; unset fields keep prior values.
	UpdateTodo(ctx context.Context, userID, todoID string, req dto.UpdateTodoRequest) (*domain.Todo, error)

	// DeleteTodo removes the todo if the caller owns it. A second delete of
	// the same id reports not-found.
	DeleteTodo(ctx context.Context, userID, todoID string) error
}
