package dto

import "time"

// RegisterRequest payload for new shoppers.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest payload for federated login.
type GoogleLoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminLoginRequest payload for the administrative login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a shopper; the token is echoed in the
// body for clients that cannot rely on the session cookie.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
