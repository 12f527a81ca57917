package domain

import "time"

// AuthProvider identifies how a user proves their identity.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user of the application in the domain.
// A user always has at least one credential path: a PasswordHash for local
// accounts or a GoogleID for federated ones. Email is unique across both.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Username       string       `json:"username,omitempty"` // empty for federated-only accounts
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"` // never serialized
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	ProfilePicture string       `json:"profilePicture"`
	AuthProvider   AuthProvider `json:"authProvider"`
	GoogleID       string       `json:"-"` // provider subject, empty for local accounts
	LastLogin      *time.Time   `json:"lastLogin,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// GetUserID implements the user response mapping interface.
func (u *User) GetUserID() string { return u.UserID }

// GetUsername implements the user response mapping interface.
func (u *User) GetUsername() string { return u.Username }

// GoogleUserInfo is the identity assertion delivered by Google after the
// OAuth handshake. Only the fields the reconciler consumes are kept.
type GoogleUserInfo struct {
	ID            string `json:"id"` // Google's stable subject for the user
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}
