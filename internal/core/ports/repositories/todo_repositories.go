package repositories

import (
	"context"

	"github.com/karales/todo_backend/internal/core/domain"
)

// TodoReader defines read operations for todo data. Every operation is
// scoped by the owning user id; a row owned by someone else reports
// apperrors.ErrNotFound, never a distinguishable "forbidden" signal.
type TodoReader interface {
	// FindTodoByID retrieves a todo by id, scoped to the owner.
	FindTodoByID(ctx context.Context, todoID, userID string) (*domain.Todo, error)

	// FindTodos retrieves all todos owned by the user, narrowed by filter.
	FindTodos(ctx context.Context, userID string, filter domain.TodoFilter) ([]domain.Todo, error)
}

// TodoWriter defines write operations for todo data.
type TodoWriter interface {
	// SaveTodo persists a new todo.
	SaveTodo(ctx context.Context, todo domain.Todo) error

	// UpdateTodo applies a partial update scoped to the owner and returns
	// the merged row.
	UpdateTodo(ctx context.Context, todoID, userID string, patch domain.TodoPatch) (*domain.Todo, error)

	// DeleteTodo removes a todo scoped to the owner.
	DeleteTodo(ctx context.Context, todoID, userID string) error
}

// TodoRepositoryFacade combines all todo-related repository interfaces.
type TodoRepositoryFacade interface {
	TodoReader
	TodoWriter
}
