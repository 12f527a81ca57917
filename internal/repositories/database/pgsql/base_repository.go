package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karales/todo_backend/internal/apperrors"
)

// baseRepository carries the shared pool handle and the per-query deadline.
// Every statement is a single auto-committed round-trip bounded by
// queryTimeout; an exceeded deadline surfaces as ErrServiceUnavailable
// rather than hanging the request.
type baseRepository struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
}

func newBaseRepository(db *pgxpool.Pool, queryTimeout time.Duration) baseRepository {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return baseRepository{db: db, queryTimeout: queryTimeout}
}

func (r *baseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.queryTimeout)
}

const uniqueViolationCode = "23505"

// translateError maps driver errors to the apperrors taxonomy. Anything it
// does not recognize passes through for the caller to wrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ErrServiceUnavailable
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperrors.ErrDuplicate
	}
	return err
}
