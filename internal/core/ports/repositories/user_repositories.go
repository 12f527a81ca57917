package repositories

import (
	"context"
	"time"

	"github.com/karales/todo_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByUsernameOrEmail runs the single OR-combined duplicate check
	// used during registration. It returns the first matching row.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// FindUserByGoogleIDOrEmail runs the single OR-combined lookup the
	// identity reconciler depends on: a local account with a matching email
	// is claimed by a federated login carrying the same address.
	FindUserByGoogleIDOrEmail(ctx context.Context, googleID, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateLastLogin stamps a successful authentication.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error

	// UpdateUserNames partially updates first/last name; nil keeps the
	// stored value. Returns the updated row.
	UpdateUserNames(ctx context.Context, userID string, firstName, lastName *string) (*domain.User, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error

	// UpdateProfilePicture replaces the stored picture URL.
	UpdateProfilePicture(ctx context.Context, userID string, pictureURL string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
