package usecase

import (
	"context"

	"budget/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionUsecase defines sign-in and token verification.
type SessionUsecase interface {
	// Login checks the credentials and issues a token. Unknown email and
	// wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate turns a bearer token into the caller's session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}
