package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
)

type transactionRepository struct {
	store *Store
	lock  sync.Locker
}

// NewTransactionRepository returns a transaction repository backed by store.
func NewTransactionRepository(store *Store) repository.TransactionRepository {
	return &transactionRepository{store: store, lock: &store.mu}
}

func (r *transactionRepository) Find(_ context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	transactions := make([]*entity.Transaction, 0)
	for _, tx := range r.store.transactions {
		if filter.UserID != 0 && tx.UserID != filter.UserID {
			continue
		}
		if filter.PlaceID != 0 && tx.PlaceID != filter.PlaceID {
			continue
		}
		transactions = append(transactions, r.withRelations(tx))
	}

	slices.SortFunc(transactions, func(a, b *entity.Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return transactions, nil
}

func (r *transactionRepository) FindByID(_ context.Context, id, ownerID int) (*entity.Transaction, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	tx, err := r.owned(id, ownerID)
	if err != nil {
		return nil, err
	}

	return r.withRelations(tx), nil
}

func (r *transactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.checkReferences(transaction); err != nil {
		return err
	}

	r.store.nextTransactionID++
	now := r.store.now()
	transaction.ID = r.store.nextTransactionID
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	r.store.transactions[transaction.ID] = stripRelations(transaction)

	return nil
}

func (r *transactionRepository) Update(_ context.Context, transaction *entity.Transaction, ownerID int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, err := r.owned(transaction.ID, ownerID)
	if err != nil {
		return err
	}

	updated := stripRelations(existing)
	updated.Amount = transaction.Amount
	updated.Date = transaction.Date
	updated.PlaceID = transaction.PlaceID
	if err := r.checkReferences(updated); err != nil {
		return err
	}
	updated.UpdatedAt = r.store.now()
	r.store.transactions[updated.ID] = updated

	return nil
}

func (r *transactionRepository) Delete(_ context.Context, id, ownerID int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, err := r.owned(id, ownerID); err != nil {
		return err
	}
	delete(r.store.transactions, id)

	return nil
}

func (r *transactionRepository) owned(id, ownerID int) (*entity.Transaction, error) {
	tx, ok := r.store.transactions[id]
	if !ok || (ownerID != 0 && tx.UserID != ownerID) {
		return nil, errors.WithStack(repository.ErrTransactionNotFound)
	}

	return tx, nil
}

func (r *transactionRepository) checkReferences(tx *entity.Transaction) error {
	if _, ok := r.store.users[tx.UserID]; !ok {
		return foreignKeyConflict(repository.ConstraintTransactionUser, tx.UserID)
	}
	if _, ok := r.store.places[tx.PlaceID]; !ok {
		return foreignKeyConflict(repository.ConstraintTransactionPlace, tx.PlaceID)
	}

	return nil
}

func (r *transactionRepository) withRelations(tx *entity.Transaction) *entity.Transaction {
	cp := stripRelations(tx)
	if u, ok := r.store.users[tx.UserID]; ok {
		cp.User = &entity.UserSummary{ID: u.ID, Name: u.Name}
	}
	if p, ok := r.store.places[tx.PlaceID]; ok {
		cp.Place = clonePlace(p)
	}

	return cp
}

func stripRelations(tx *entity.Transaction) *entity.Transaction {
	cp := *tx
	cp.User = nil
	cp.Place = nil

	return &cp
}

func foreignKeyConflict(constraint string, id int) error {
	return errors.WithStack(&repository.ConstraintError{
		Kind:       repository.ForeignKeyViolation,
		Constraint: constraint,
		Err:        errors.Errorf("referenced row %d does not exist", id),
	})
}
