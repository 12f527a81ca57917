package services

import (
	"context"
	"io"

	"github.com/karales/todo_backend/internal/core/domain"
	"github.com/karales/todo_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserAuthSvc defines local credential operations.
type UserAuthSvc interface {
	// Register creates a local-credential user. Duplicate username or email
	// is reported as a conflict, username checked first.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies username+password. Unknown username and wrong
	// password are indistinguishable to the caller.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// IdentityReconcilerSvc finds or creates the user behind a federated
// assertion.
type IdentityReconcilerSvc interface {
	// FindOrCreateGoogleUser looks a user up by provider id OR email,
	// creating a federated row when neither matches. Logging in twice with
	// the same assertion yields the same user id both times.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// ProfileSvc defines profile management operations.
type ProfileSvc interface {
	// UpdateProfile partially updates name fields.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// ChangePassword verifies the current password before storing the new
	// hash.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error

	// ReplaceProfilePicture uploads the new image first and then removes the
	// previous one best-effort. Returns the new public URL.
	ReplaceProfilePicture(ctx context.Context, userID string, reader io.Reader, size int64, contentType string) (string, error)

	// RemoveProfilePicture resets the picture to the default placeholder and
	// removes the stored object best-effort. Returns the placeholder URL.
	RemoveProfilePicture(ctx context.Context, userID string) (string, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
	IdentityReconcilerSvc
	ProfileSvc
}
