package handler

import "github.com/hireproof/backcheck/internal/core/domain"

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signinResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// messageResponse is the envelope for operations that acknowledge with a
// human-readable message.
type messageResponse struct {
	Message string `json:"message"`
}
