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

type PgxUserRepository struct {
	baseRepository
}

func newPgxUserRepository(db *pgxpool.Pool, queryTimeout time.Duration) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{baseRepository: newBaseRepository(db, queryTimeout)}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       nullString(d.Username),
		Email:          d.Email,
		PasswordHash:   nullString(d.PasswordHash),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		ProfilePicture: d.ProfilePicture,
		AuthProvider:   string(d.AuthProvider),
		GoogleID:       nullString(d.GoogleID),
		LastLogin:      nullTime(d.LastLogin),
		CreatedAt:      d.CreatedAt,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username.String,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash.String,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		ProfilePicture: m.ProfilePicture,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		GoogleID:       m.GoogleID.String,
		LastLogin:      timePtr(m.LastLogin),
		CreatedAt:      m.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

const userColumns = `user_id, username, email, password_hash, first_name, last_name, profile_picture, auth_provider, google_id, last_login, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.FirstName,
		&m.LastName,
		&m.ProfilePicture,
		&m.AuthProvider,
		&m.GoogleID,
		&m.LastLogin,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, password_hash, first_name, last_name, profile_picture, auth_provider, google_id, last_login, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.FirstName,
		m.LastName,
		m.ProfilePicture,
		m.AuthProvider,
		m.GoogleID,
		m.LastLogin,
		m.CreatedAt,
	)
	if err != nil {
		if terr := translateError(err); terr != err {
			return terr
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindUserByUsernameOrEmail is the registration duplicate check: a single
// OR-combined query so one round-trip answers both collisions.
func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2 LIMIT 1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, username, email))
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to find user by username or email: %w", err)
	}
	return user, nil
}

// FindUserByGoogleIDOrEmail is the reconciler lookup. The OR on email is the
// account-linking policy: a local account with the same address is claimed
// by the federated login instead of creating a second row.
func (r *PgxUserRepository) FindUserByGoogleIDOrEmail(ctx context.Context, googleID, email string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1 OR email = $2 LIMIT 1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, googleID, email))
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to find user by google id or email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE users SET last_login = $1 WHERE user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, at, userID)
	if err != nil {
		if terr := translateError(err); terr != err {
			return terr
		}
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateUserNames partially updates the name columns via COALESCE so nil
// inputs preserve stored values.
func (r *PgxUserRepository) UpdateUserNames(ctx context.Context, userID string, firstName, lastName *string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        UPDATE users
        SET first_name = COALESCE($1, first_name),
            last_name = COALESCE($2, last_name)
        WHERE user_id = $3
        RETURNING ` + userColumns + `;
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, firstName, lastName, userID))
	if err != nil {
		if terr := translateError(err); terr != err {
			return nil, terr
		}
		return nil, fmt.Errorf("failed to update user names: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE users SET password_hash = $1 WHERE user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		if terr := translateError(err); terr != err {
			return terr
		}
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateProfilePicture(ctx context.Context, userID string, pictureURL string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE users SET profile_picture = $1 WHERE user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, pictureURL, userID)
	if err != nil {
		if terr := translateError(err); terr != err {
			return terr
		}
		return fmt.Errorf("failed to update profile picture: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
