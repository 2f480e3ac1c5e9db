package memory

import (
	"context"
	"slices"
	"sync"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
)

type userRepository struct {
	store *Store
	lock  sync.Locker
}

// NewUserRepository returns a user repository backed by store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store, lock: &store.mu}
}

func (r *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, cloneUser(u))
	}
	slices.SortFunc(users, func(a, b *entity.User) int { return a.ID - b.ID })

	return users, nil
}

func (r *userRepository) FindByID(_ context.Context, id int) (*entity.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return cloneUser(u), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, u := range r.store.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}

	return nil, errors.WithStack(repository.ErrUserNotFound)
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.emailTaken(user.Email, 0) {
		return emailConflict(user.Email)
	}

	r.store.nextUserID++
	now := r.store.now()
	user.ID = r.store.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.store.users[user.ID]
	if !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}
	if r.emailTaken(user.Email, user.ID) {
		return emailConflict(user.Email)
	}

	updated := cloneUser(existing)
	updated.Name = user.Name
	updated.Email = user.Email
	updated.UpdatedAt = r.store.now()
	r.store.users[user.ID] = updated

	return nil
}

func (r *userRepository) Delete(_ context.Context, id int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	delete(r.store.users, id)
	for txID, tx := range r.store.transactions {
		if tx.UserID == id {
			delete(r.store.transactions, txID)
		}
	}

	return nil
}

func (r *userRepository) emailTaken(email string, exceptID int) bool {
	for _, u := range r.store.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}

	return false
}

func emailConflict(email string) error {
	return errors.WithStack(&repository.ConstraintError{
		Kind:       repository.UniqueViolation,
		Constraint: repository.ConstraintUserEmailUnique,
		Err:        errors.Errorf("duplicate email %q", email),
	})
}
