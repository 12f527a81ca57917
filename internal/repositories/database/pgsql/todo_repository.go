package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karales/todo_backend/internal/apperrors"
	"github.com/karales/todo_backend/internal/core/domain"
	portsrepo "github.com/karales/todo_backend/internal/core/ports/repositories"
	"github.com/karales/todo_backend/internal/models"
)

// PgxTodoRepository persists todos. Every read, update and delete filters by
// todo_id AND user_id in the same statement: the ownership check and the
// operation are one atomic query, and a foreign row is indistinguishable
// from a missing one.
type PgxTodoRepository struct {
	baseRepository
}

func newPgxTodoRepository(db *pgxpool.Pool, queryTimeout time.Duration) portsrepo.TodoRepositoryFacade {
	return &PgxTodoRepository{baseRepository: newBaseRepository(db, queryTimeout)}
}

var _ portsrepo.TodoRepositoryFacade = (*PgxTodoRepository)(nil)

func toModelTodo(d domain.Todo) models.Todo {
	m := models.Todo{
		TodoID:    d.TodoID,
		UserID:    d.UserID,
		Title:     d.Title,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt,
	}
	if d.Description != nil {
		m.Description = sql.NullString{String: *d.Description, Valid: true}
	}
	if d.Priority != nil {
		m.Priority = sql.NullInt32{Int32: int32(*d.Priority), Valid: true}
	}
	if d.DueDate != nil {
		m.DueDate = sql.NullTime{Time: *d.DueDate, Valid: true}
	}
	return m
}

func toDomainTodo(m models.Todo) domain.Todo {
	d := domain.Todo{
		TodoID:    m.TodoID,
		UserID:    m.UserID,
		Title:     m.Title,
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
	}
	if m.Description.Valid {
		v := m.Description.String
		d.Description = &v
	}
	if m.Priority.Valid {
		v := int(m.Priority.Int32)
		d.Priority = &v
	}
	if m.DueDate.Valid {
		v := m.DueDate.Time
		d.DueDate = &v
	}
	return d
}

const todoColumns = `todo_id, user_id, title, description, completed, priority, due_date, created_at`

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var m models.Todo
	err := row.Scan(
		&m.TodoID,
		&m.UserID,
		&m.Title,
		&m.Description,
		&m.Completed,
		&m.Priority,
		&m.DueDate,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainTodo(m)
	return &d, nil
}

func (r *PgxTodoRepository) SaveTodo(ctx context.Context, todo domain.Todo) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := toModelTodo(todo)
	query := `
        INSERT INTO todo (todo_id, user_id, title, description, completed, priority, due_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.TodoID,
		m.UserID,
		m.Title,
		m.Description,
		m.Completed,
		m.Priority,
		m.DueDate,
		m.CreatedAt,
	)
	if err != nil {
		if terr := translateError(err); terr != err {
			return terr
		}
		return fmt.Errorf("failed to save todo: %w", err)
	}
	return nil
}

func (r *PgxTodoRepository) FindTodoByID(ctx context.Context, todoID, userID string) (*domain.Todo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + todoColumns + ` FROM todo WHERE todo_id = $1 AND user_id = $2;`
	todo, err := scanTodo(r.db.QueryRow(ctx, query, todoID, userID))
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to find todo by ID: %w", err)
	}
	return todo, nil
}

func (r *PgxTodoRepository) FindTodos(ctx context.Context, userID string, filter domain.TodoFilter) ([]domain.Todo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + todoColumns + ` FROM todo WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		query += fmt.Sprintf(" AND completed = $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo row: %w", err)
		}
		todos = append(todos, *todo)
	}
	if rows.Err() != nil {
		if terr := translateError(rows.Err()); terr != rows.Err() {
			return nil, terr
		}
		return nil, fmt.Errorf("error iterating todo rows: %w", rows.Err())
	}

	return todos, nil
}

// UpdateTodo merges the patch over the stored row with COALESCE, so nil
// fields keep prior values. The RETURNING clause makes the read-back part of
// the same statement.
func (r *PgxTodoRepository) UpdateTodo(ctx context.Context, todoID, userID string, patch domain.TodoPatch) (*domain.Todo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        UPDATE todo
        SET title = COALESCE($1, title),
            description = COALESCE($2, description),
            completed = COALESCE($3, completed),
            priority = COALESCE($4, priority),
            due_date = COALESCE($5, due_date)
        WHERE todo_id = $6 AND user_id = $7
        RETURNING ` + todoColumns + `;
    `
	todo, err := scanTodo(r.db.QueryRow(ctx, query,
		patch.Title,
		patch.Description,
		patch.Completed,
		patch.Priority,
		patch.DueDate,
		todoID,
		userID,
	))
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

func (r *PgxTodoRepository) DeleteTodo(ctx context.Context, todoID, userID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM todo WHERE todo_id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, todoID, userID)
	if err != nil {
		if terr := translateError(err); terr != err {
			return terr
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
