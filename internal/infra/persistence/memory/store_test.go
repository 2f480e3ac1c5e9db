package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/errors"
)

func ratingOf(v int) *int { return &v }

type fixture struct {
	store        *Store
	users        repository.UserRepository
	places       repository.PlaceRepository
	transactions repository.TransactionRepository
	txManager    repository.TransactionManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := NewStore()
	f := &fixture{
		store:        store,
		users:        NewUserRepository(store),
		places:       NewPlaceRepository(store),
		transactions: NewTransactionRepository(store),
		txManager:    NewTransactionManager(store),
	}

	ctx := context.Background()
	for _, u := range []*entity.User{
		{Name: "Thomas", Email: "thomas@example.com", Roles: entity.Roles{entity.RoleAdmin, entity.RoleUser}},
		{Name: "Pieter", Email: "pieter@example.com", Roles: entity.Roles{entity.RoleUser}},
	} {
		require.NoError(t, f.users.Create(ctx, u))
	}
	for _, p := range []*entity.Place{
		{Name: "Loon", Rating: ratingOf(5)},
		{Name: "Irish Pub", Rating: ratingOf(4)},
	} {
		require.NoError(t, f.places.Create(ctx, p))
	}

	return f
}

func constraintOf(t *testing.T, err error) *repository.ConstraintError {
	t.Helper()

	var constraintErr *repository.ConstraintError
	require.True(t, errors.As(err, &constraintErr), "expected constraint error, got %v", err)

	return constraintErr
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.users.Create(ctx, &entity.User{Name: "Copy", Email: "thomas@example.com"})
	constraintErr := constraintOf(t, err)
	assert.Equal(t, repository.UniqueViolation, constraintErr.Kind)
	assert.Equal(t, repository.ConstraintUserEmailUnique, constraintErr.Constraint)

	err = f.users.Update(ctx, &entity.User{ID: 2, Name: "Pieter", Email: "thomas@example.com"})
	assert.Equal(t, repository.ConstraintUserEmailUnique, constraintOf(t, err).Constraint)

	// Keeping one's own email is not a conflict.
	require.NoError(t, f.users.Update(ctx, &entity.User{ID: 2, Name: "Pieter V.", Email: "pieter@example.com"}))
	user, err := f.users.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Pieter V.", user.Name)
	assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
}

func TestUserRepository_LookupsAndNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	users, err := f.users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 1, users[0].ID)

	user, err := f.users.FindByEmail(ctx, "pieter@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	_, err = f.users.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	_, err = f.users.FindByID(ctx, 99)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	assert.True(t, errors.Is(f.users.Update(ctx, &entity.User{ID: 99}), repository.ErrUserNotFound))
	assert.True(t, errors.Is(f.users.Delete(ctx, 99), repository.ErrUserNotFound))
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.FindByID(ctx, 1)
	require.NoError(t, err)
	user.Name = "mutated"
	user.Roles[0] = entity.RoleUser

	again, err := f.users.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Thomas", again.Name)
	assert.True(t, again.Roles.Contains(entity.RoleAdmin))
}

func TestPlaceRepository_UniqueNameAndOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.places.Create(ctx, &entity.Place{Name: "Loon"})
	assert.Equal(t, repository.ConstraintPlaceNameUnique, constraintOf(t, err).Constraint)

	err = f.places.Update(ctx, &entity.Place{ID: 2, Name: "Loon"})
	assert.Equal(t, repository.UniqueViolation, constraintOf(t, err).Kind)

	places, err := f.places.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Irish Pub", places[0].Name)
	assert.Equal(t, "Loon", places[1].Name)

	ok, err := f.places.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.places.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.places.Update(ctx, &entity.Place{ID: 2, Name: "Irish Pub", Rating: nil}))
	place, err := f.places.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, place.Rating)
}

func TestTransactionRepository_OwnershipScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tx := &entity.Transaction{Amount: -20, Date: time.Now(), UserID: 2, PlaceID: 1}
	require.NoError(t, f.transactions.Create(ctx, tx))

	got, err := f.transactions.FindByID(ctx, tx.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, &entity.UserSummary{ID: 2, Name: "Pieter"}, got.User)
	assert.Equal(t, "Loon", got.Place.Name)

	_, err = f.transactions.FindByID(ctx, tx.ID, 1)
	assert.True(t, errors.Is(err, repository.ErrTransactionNotFound))

	_, err = f.transactions.FindByID(ctx, tx.ID, 0)
	assert.NoError(t, err)

	err = f.transactions.Update(ctx, &entity.Transaction{ID: tx.ID, Amount: 5, Date: tx.Date, PlaceID: 2}, 1)
	assert.True(t, errors.Is(err, repository.ErrTransactionNotFound))

	err = f.transactions.Delete(ctx, tx.ID, 1)
	assert.True(t, errors.Is(err, repository.ErrTransactionNotFound))

	require.NoError(t, f.transactions.Update(ctx, &entity.Transaction{ID: tx.ID, Amount: 5, Date: tx.Date, PlaceID: 2}, 2))
	got, err = f.transactions.FindByID(ctx, tx.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Amount)
	assert.Equal(t, 2, got.PlaceID)
	assert.Equal(t, 2, got.UserID)

	require.NoError(t, f.transactions.Delete(ctx, tx.ID, 2))
}

func TestTransactionRepository_ForeignKeys(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.transactions.Create(ctx, &entity.Transaction{Amount: 1, Date: time.Now(), UserID: 1, PlaceID: 99})
	constraintErr := constraintOf(t, err)
	assert.Equal(t, repository.ForeignKeyViolation, constraintErr.Kind)
	assert.Equal(t, repository.ConstraintTransactionPlace, constraintErr.Constraint)

	err = f.transactions.Create(ctx, &entity.Transaction{Amount: 1, Date: time.Now(), UserID: 99, PlaceID: 1})
	assert.Equal(t, repository.ConstraintTransactionUser, constraintOf(t, err).Constraint)
}

func TestTransactionRepository_FindFiltersAndOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, tx := range []*entity.Transaction{
		{Amount: 1, Date: base, UserID: 1, PlaceID: 1},
		{Amount: 2, Date: base.Add(time.Hour), UserID: 1, PlaceID: 2},
		{Amount: 3, Date: base.Add(2 * time.Hour), UserID: 2, PlaceID: 1},
	} {
		require.NoError(t, f.transactions.Create(ctx, tx))
	}

	all, err := f.transactions.Find(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []float64{3, 2, 1}, []float64{all[0].Amount, all[1].Amount, all[2].Amount})

	mine, err := f.transactions.Find(ctx, entity.TransactionFilter{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	minePlace, err := f.transactions.Find(ctx, entity.TransactionFilter{UserID: 1, PlaceID: 1})
	require.NoError(t, err)
	require.Len(t, minePlace, 1)
	assert.Equal(t, 1.0, minePlace[0].Amount)
}

func TestDelete_CascadesToTransactions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.transactions.Create(ctx, &entity.Transaction{Amount: 1, Date: time.Now(), UserID: 1, PlaceID: 1}))
	require.NoError(t, f.transactions.Create(ctx, &entity.Transaction{Amount: 2, Date: time.Now(), UserID: 2, PlaceID: 2}))

	require.NoError(t, f.places.Delete(ctx, 1))
	remaining, err := f.transactions.Find(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].PlaceID)

	require.NoError(t, f.users.Delete(ctx, 2))
	remaining, err = f.transactions.Find(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := f.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.PlaceRepo().Create(ctx, &entity.Place{Name: "Temp"}); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	places, err := f.places.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, places, 2)

	// The id sequence is restored too.
	place := &entity.Place{Name: "Dranken Geers"}
	require.NoError(t, f.places.Create(ctx, place))
	assert.Equal(t, 3, place.ID)
}

func TestTransactionManager_Commits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		ok, err := repos.PlaceRepo().Exists(ctx, 1)
		if err != nil || !ok {
			return errors.New("place missing")
		}

		return repos.TransactionRepo().Create(ctx, &entity.Transaction{Amount: 7, Date: time.Now(), UserID: 1, PlaceID: 1})
	})
	require.NoError(t, err)

	all, err := f.transactions.Find(ctx, entity.TransactionFilter{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTransactionManager_CanceledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := f.txManager.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
