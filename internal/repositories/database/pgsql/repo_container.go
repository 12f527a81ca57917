package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/karales/todo_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx repositories against the shared pool.
// queryTimeout bounds every statement issued by the repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo: newPgxUserRepository(dbPool, queryTimeout),
		TodoRepo: newPgxTodoRepository(dbPool, queryTimeout),
	}
}
