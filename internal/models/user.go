package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for the users table. Optional columns are
// nullable: username and password_hash are NULL for federated-only accounts,
// google_id is NULL for local ones.
type User struct {
	UserID         string         `db:"user_id"`
	Username       sql.NullString `db:"username"`
	Email          string         `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	ProfilePicture string         `db:"profile_picture"`
	AuthProvider   string         `db:"auth_provider"`
	GoogleID       sql.NullString `db:"google_id"`
	LastLogin      sql.NullTime   `db:"last_login"`
	CreatedAt      time.Time      `db:"created_at"`
}
