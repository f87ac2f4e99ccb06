// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,utf16min=6,utf16max=255"`
	Email    string `json:"email" validate:"required,email,utf16min=6,utf16max=255"`
	Password string `json:"password" validate:"required,utf16min=6,utf16max=20"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email,utf16min=6,utf16max=255"`
	Password string `json:"password" validate:"required,utf16min=6,utf16max=20"`
}

// --- Output DTOs ---

// RegisterOutput carries the id the store assigned to the new account.
type RegisterOutput struct {
	AccountID string
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// AccountUsecase registers accounts and authenticates logins.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
