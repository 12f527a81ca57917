package dto

import "github.com/karales/todo_backend/internal/core/domain"

// UserResponse is the public projection of a user.
type UserResponse struct {
	UserID         string `json:"id"`
	Username       string `json:"username,omitempty"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	AuthProvider   string `json:"auth_provider"`
	ProfilePicture string `json:"profile_picture"`
}

// ToUserResponse converts a domain user to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		AuthProvider:   string(user.AuthProvider),
		ProfilePicture: user.ProfilePicture,
	}
}
