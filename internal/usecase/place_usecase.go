package usecase

import (
	"context"

	"budget/internal/domain/entity"
)

// PlaceInput carries the writable place fields. A nil Rating means unrated.
type PlaceInput struct {
	Name   string
	Rating *int
}

// PlaceDetail is a place together with the caller's transactions there.
type PlaceDetail struct {
	Place        *entity.Place
	Transactions []*entity.Transaction
}

// PlaceUsecase defines place management. Write operations are restricted to
// admins by the delivery layer.
type PlaceUsecase interface {
	List(ctx context.Context) ([]*entity.Place, error)
	Get(ctx context.Context, session *entity.Session, id int) (*PlaceDetail, error)
	Create(ctx context.Context, input *PlaceInput) (*entity.Place, error)
	Update(ctx context.Context, id int, input *PlaceInput) (*entity.Place, error)
	Delete(ctx context.Context, id int) error
}
