package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/karales/todo_backend/internal/apperrors"
	"github.com/karales/todo_backend/internal/core/domain"
	portsrepo "github.com/karales/todo_backend/internal/core/ports/repositories"
	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/dto"
	"github.com/karales/todo_backend/internal/utils"
)

// dummyPasswordHash is a valid bcrypt hash compared against when the
// username does not exist, so the unknown-username and wrong-password paths
// cost the same and stay indistinguishable to the caller.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type userService struct {
	userRepo       portsrepo.UserRepositoryFacade
	storage        portsrepo.ObjectStorage // nil when object storage is not configured
	defaultPicture string
	logger         *slog.Logger
}

// NewUserService creates the user service. storage may be nil; the picture
// operations then report unavailable.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, storage portsrepo.ObjectStorage, defaultPicture string, logger *slog.Logger) portssvc.UserSvcFacade {
	return &userService{
		userRepo:       userRepo,
		storage:        storage,
		defaultPicture: defaultPicture,
		logger:         logger,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// Register creates a local-credential account. The duplicate check is a
// single OR-combined query; when both fields collide the username conflict
// is the one reported.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, apperrors.NewBadRequestError("Username, password, and email are required")
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		if existing.Username == req.Username {
			return nil, apperrors.NewConflictError("Username already exists")
		}
		return nil, apperrors.NewConflictError("Email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: s.defaultPicture,
		AuthProvider:   domain.ProviderLocal,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same fields.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Username or email already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Authenticate verifies a local login. Both failure paths return the same
// ErrUnauthorized after one bcrypt comparison each.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CheckPasswordHash(password, dummyPasswordHash)
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if user.PasswordHash == "" {
		// Federated-only account: no local credential path.
		utils.CheckPasswordHash(password, dummyPasswordHash)
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	return user, nil
}

// FindOrCreateGoogleUser reconciles a federated assertion with the user
// table. The OR-combined lookup means a local account holding the same email
// is claimed by the federated login; that linking policy is deliberate and
// must not be tightened. Any storage error fails the login closed.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.ID == "" || info.Email == "" {
		return nil, apperrors.NewBadRequestError("Federated assertion is missing provider id or email")
	}

	now := time.Now()

	user, err := s.userRepo.FindUserByGoogleIDOrEmail(ctx, info.ID, info.Email)
	if err == nil {
		// Existing row: only last_login moves, everything else stays as-is.
		if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
			return nil, fmt.Errorf("failed to update last login: %w", err)
		}
		user.LastLogin = &now
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up federated user: %w", err)
	}

	picture := info.Picture
	if picture == "" {
		picture = s.defaultPicture
	}

	newUser := domain.User{
		UserID:         uuid.NewString(),
		Email:          info.Email,
		FirstName:      info.GivenName,
		LastName:       info.FamilyName,
		ProfilePicture: picture,
		AuthProvider:   domain.ProviderGoogle,
		GoogleID:       info.ID,
		LastLogin:      &now,
		CreatedAt:      now,
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create federated user: %w", err)
	}

	return &newUser, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.UpdateUserNames(ctx, userID, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to look up user for password change: %w", err)
	}

	if user.PasswordHash == "" {
		return apperrors.NewBadRequestError("Password change is not available for federated accounts")
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.NewUnauthorizedError("Current password is incorrect")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}

// ReplaceProfilePicture uploads the new image before anything else touches
// the old one: the previous object is only removed, best-effort, after the
// new URL is stored. A failed removal is logged and swallowed.
func (s *userService) ReplaceProfilePicture(ctx context.Context, userID string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.storage == nil {
		return "", apperrors.NewServiceUnavailableError("Profile picture storage is not configured")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to look up user for picture replace: %w", err)
	}
	oldPicture := user.ProfilePicture

	key := fmt.Sprintf("profile_pictures/profile-%s-%d", userID, time.Now().UnixMilli())
	newURL, err := s.storage.Upload(ctx, key, reader, size, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}

	if err := s.userRepo.UpdateProfilePicture(ctx, userID, newURL); err != nil {
		return "", fmt.Errorf("failed to store profile picture URL: %w", err)
	}

	s.removeStoredPicture(ctx, oldPicture)

	return newURL, nil
}

func (s *userService) RemoveProfilePicture(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to look up user for picture delete: %w", err)
	}
	oldPicture := user.ProfilePicture

	if err := s.userRepo.UpdateProfilePicture(ctx, userID, s.defaultPicture); err != nil {
		return "", fmt.Errorf("failed to reset profile picture: %w", err)
	}

	s.removeStoredPicture(ctx, oldPicture)

	return s.defaultPicture, nil
}

// removeStoredPicture deletes a previously stored picture object. URLs the
// store does not own (the default placeholder included) are skipped, and
// delete failures never fail the request.
func (s *userService) removeStoredPicture(ctx context.Context, pictureURL string) {
	if s.storage == nil || pictureURL == "" {
		return
	}
	key, ok := s.storage.KeyFromURL(pictureURL)
	if !ok {
		return
	}
	if err := s.storage.Remove(ctx, key); err != nil {
		s.logger.Warn("Failed to remove old profile picture", slog.String("key", key), slog.String("error", err.Error()))
	}
}
