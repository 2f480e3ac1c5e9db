package memory

import (
	"context"

	"budget/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a manager that runs each unit of work under
// the store lock and restores the previous state when it fails.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, lock: noopLocker{}}
}

func (f *repositoryFactory) PlaceRepo() repository.PlaceRepository {
	return &placeRepository{store: f.store, lock: noopLocker{}}
}

func (f *repositoryFactory) TransactionRepo() repository.TransactionRepository {
	return &transactionRepository{store: f.store, lock: noopLocker{}}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
		if err != nil {
			tm.store.restore(snap)
		}
	}()

	return fn(&repositoryFactory{store: tm.store})
}
