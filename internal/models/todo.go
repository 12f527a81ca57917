package models

import (
	"database/sql"
	"time"
)

// Todo is the database row shape for the todo table.
type Todo struct {
	TodoID      string         `db:"todo_id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	Priority    sql.NullInt32  `db:"priority"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
}
