package dto

// RegisterRequest is the payload for local account registration.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the payload for local login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register, login and the OAuth exchange. The
// user fields are the public subset only; password hashes never appear here.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ExchangeCodeRequest carries the authorization code the SPA received from
// Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
