package dto

// RegisterRequest creates a new account. Students get an empty profile
// alongside the account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=student counselor admin"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the account subset returned with a token.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// AuthResponse carries a signed JWT plus the authenticated account.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
