package repository

import (
	"context"

	"budget/internal/domain/entity"
)

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Place, error)
	FindByID(ctx context.Context, id int) (*entity.Place, error)

	// Exists reports whether a place with id is stored.
	Exists(ctx context.Context, id int) (bool, error)

	Create(ctx context.Context, place *entity.Place) error
	Update(ctx context.Context, place *entity.Place) error

	// Delete removes a place and, by cascade, its transactions.
	Delete(ctx context.Context, id int) error
}
