package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
)

type placeRepository struct {
	store *Store
	lock  sync.Locker
}

// NewPlaceRepository returns a place repository backed by store.
func NewPlaceRepository(store *Store) repository.PlaceRepository {
	return &placeRepository{store: store, lock: &store.mu}
}

func (r *placeRepository) FindAll(_ context.Context) ([]*entity.Place, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	places := make([]*entity.Place, 0, len(r.store.places))
	for _, p := range r.store.places {
		places = append(places, clonePlace(p))
	}
	slices.SortFunc(places, func(a, b *entity.Place) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return a.ID - b.ID
	})

	return places, nil
}

func (r *placeRepository) FindByID(_ context.Context, id int) (*entity.Place, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	p, ok := r.store.places[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrPlaceNotFound)
	}

	return clonePlace(p), nil
}

func (r *placeRepository) Exists(_ context.Context, id int) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	_, ok := r.store.places[id]

	return ok, nil
}

func (r *placeRepository) Create(_ context.Context, place *entity.Place) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.nameTaken(place.Name, 0) {
		return nameConflict(place.Name)
	}

	r.store.nextPlaceID++
	now := r.store.now()
	place.ID = r.store.nextPlaceID
	place.CreatedAt = now
	place.UpdatedAt = now
	r.store.places[place.ID] = clonePlace(place)

	return nil
}

func (r *placeRepository) Update(_ context.Context, place *entity.Place) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.store.places[place.ID]
	if !ok {
		return errors.WithStack(repository.ErrPlaceNotFound)
	}
	if r.nameTaken(place.Name, place.ID) {
		return nameConflict(place.Name)
	}

	updated := clonePlace(place)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.store.now()
	r.store.places[place.ID] = updated

	return nil
}

func (r *placeRepository) Delete(_ context.Context, id int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.store.places[id]; !ok {
		return errors.WithStack(repository.ErrPlaceNotFound)
	}

	delete(r.store.places, id)
	for txID, tx := range r.store.transactions {
		if tx.PlaceID == id {
			delete(r.store.transactions, txID)
		}
	}

	return nil
}

func (r *placeRepository) nameTaken(name string, exceptID int) bool {
	for _, p := range r.store.places {
		if p.Name == name && p.ID != exceptID {
			return true
		}
	}

	return false
}

func nameConflict(name string) error {
	return errors.WithStack(&repository.ConstraintError{
		Kind:       repository.UniqueViolation,
		Constraint: repository.ConstraintPlaceNameUnique,
		Err:        errors.Errorf("duplicate place name %q", name),
	})
}
