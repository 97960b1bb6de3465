package model

import "time"

// User represents a user account as stored in the repository.
// PasswordHash and VerificationCode are persisted but never serialized
// into an API response; use Public for anything that leaves the server.
type User struct {
	ID               string
	Name             string
	Surname          string
	Email            string
	PasswordHash     string
	VerificationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Verified reports whether the account has completed email verification.
// An empty verification code means verified; there is no third state.
func (u *User) Verified() bool {
	return u.VerificationCode == ""
}

// Public returns the projection of the user that is safe to expose externally.
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
	}
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse carries the signed token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}
