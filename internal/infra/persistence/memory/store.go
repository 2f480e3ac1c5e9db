// Package memory implements the repository interfaces on a mutex-guarded
// in-process store. It reports the same errors as the PostgreSQL
// implementation, including repository.ConstraintError for unique and
// foreign key violations, and cascades deletes the same way.
package memory

import (
	"maps"
	"sync"
	"time"

	"budget/internal/domain/entity"
)

// Store holds every table. Repositories obtained from it share its lock.
type Store struct {
	mu sync.Mutex

	users        map[int]*entity.User
	places       map[int]*entity.Place
	transactions map[int]*entity.Transaction

	nextUserID        int
	nextPlaceID       int
	nextTransactionID int

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:        make(map[int]*entity.User),
		places:       make(map[int]*entity.Place),
		transactions: make(map[int]*entity.Transaction),
		now:          time.Now,
	}
}

type snapshot struct {
	users        map[int]*entity.User
	places       map[int]*entity.Place
	transactions map[int]*entity.Transaction

	nextUserID        int
	nextPlaceID       int
	nextTransactionID int
}

// snapshot must be called with mu held. Stored records are replaced, never
// mutated in place, so copying the maps is enough.
func (s *Store) snapshot() snapshot {
	return snapshot{
		users:             maps.Clone(s.users),
		places:            maps.Clone(s.places),
		transactions:      maps.Clone(s.transactions),
		nextUserID:        s.nextUserID,
		nextPlaceID:       s.nextPlaceID,
		nextTransactionID: s.nextTransactionID,
	}
}

// restore must be called with mu held.
func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.places = snap.places
	s.transactions = snap.transactions
	s.nextUserID = snap.nextUserID
	s.nextPlaceID = snap.nextPlaceID
	s.nextTransactionID = snap.nextTransactionID
}

// noopLocker is used by repositories bound to a running transaction, whose
// manager already holds the store lock.
type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	cp.Roles = append(entity.Roles(nil), u.Roles...)

	return &cp
}

func clonePlace(p *entity.Place) *entity.Place {
	cp := *p
	if p.Rating != nil {
		rating := *p.Rating
		cp.Rating = &rating
	}

	return &cp
}
