package dto

import (
	"time"

	"github.com/karales/todo_backend/internal/core/domain"
)

// CreateTodoRequest is the payload for adding a todo.
type CreateTodoRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Priority    *int       `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTodoRequest is a partial update: nil fields keep the stored value.
type UpdateTodoRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *int       `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// ListTodosParams defines the query parameters for listing todos.
type ListTodosParams struct {
	Keyword   string `form:"keyword"`
	Completed *bool  `form:"completed"`
}

// TodoResponse is the wire shape of a todo.
type TodoResponse struct {
	TodoID      string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    *int       `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToTodoResponse converts a domain todo to its wire shape. The owning user id
// is implied by the authenticated request and not echoed back.
func ToTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		TodoID:      t.TodoID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTodoListResponse converts a slice of domain todos.
func ToTodoListResponse(todos []domain.Todo) []TodoResponse {
	out := make([]TodoResponse, len(todos))
	for i := range todos {
		out[i] = ToTodoResponse(&todos[i])
	}
	return out
}
