package domain

import "time"

// Todo represents a task owned by exactly one user. All store operations on a
// todo are scoped by TodoID and UserID together; the id alone never
// authorizes access.
type Todo struct {
	TodoID      string     `json:"todoID"`
	UserID      string     `json:"userID"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    *int       `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TodoPatch carries a partial update. Nil fields preserve the stored value.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *int
	DueDate     *time.Time
}

// TodoFilter narrows a list query. Zero values mean no filtering.
type TodoFilter struct {
	Keyword   string // case-insensitive substring match on title
	Completed *bool  // exact match on completion status
}
