package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a student self-registration request. Admins are
// seeded from configuration; there is no admin self-registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenResponse represents the issued identity token
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int    `json:"expiresIn" example:"86400"`
}

// AuthResponse represents a successful login or registration
type AuthResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role" example:"student"`
	TokenResponse
}
