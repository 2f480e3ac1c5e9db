// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"budget/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries the editable user fields.
type UpdateUserInput struct {
	Name  string
	Email string
}

// --- Output DTOs ---

// AuthOutput is returned by a successful registration or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Ownership of the addressed user is enforced before these are called.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id int) (*entity.User, error)
	Update(ctx context.Context, id int, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id int) error
}
