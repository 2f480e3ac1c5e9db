package usecase

import (
	"context"
	"time"

	"budget/internal/domain/entity"
)

// TransactionInput carries the writable transaction fields. The owner is
// always the caller.
type TransactionInput struct {
	Amount  float64
	Date    time.Time
	PlaceID int
}

// TransactionUsecase defines transaction bookkeeping. Every operation is
// scoped to the caller's own transactions unless the caller is an admin;
// records outside the scope are reported as not found.
type TransactionUsecase interface {
	List(ctx context.Context, session *entity.Session) ([]*entity.Transaction, error)
	ListByUser(ctx context.Context, userID int) ([]*entity.Transaction, error)
	ListByPlace(ctx context.Context, session *entity.Session, placeID int) ([]*entity.Transaction, error)
	Get(ctx context.Context, session *entity.Session, id int) (*entity.Transaction, error)
	Create(ctx context.Context, session *entity.Session, input *TransactionInput) (*entity.Transaction, error)
	Update(ctx context.Context, session *entity.Session, id int, input *TransactionInput) (*entity.Transaction, error)
	Delete(ctx context.Context, session *entity.Session, id int) error
}
