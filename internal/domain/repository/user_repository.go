package repository

import (
	"context"

	"budget/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindAll returns every user ordered by id.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and sets its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies name and email of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and, by cascade, their transactions.
	Delete(ctx context.Context, id int) error
}
