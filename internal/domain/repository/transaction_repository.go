package repository

import (
	"context"

	"budget/internal/domain/entity"
)

// TransactionRepository defines persistence operations for transactions.
//
// Every single-record operation takes an ownerID: when it is non-zero the
// record must also belong to that user, otherwise ErrTransactionNotFound is
// returned. Passing 0 disables the ownership condition.
type TransactionRepository interface {
	// Find lists transactions matching filter, newest first.
	Find(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	FindByID(ctx context.Context, id, ownerID int) (*entity.Transaction, error)
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction, ownerID int) error
	Delete(ctx context.Context, id, ownerID int) error
}
