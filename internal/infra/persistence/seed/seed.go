// Package seed loads the demo data set: three users sharing one password,
// three places and three transactions per user.
package seed

import (
	"context"
	"log/slog"
	"time"

	"budget/internal/domain/entity"
	"budget/internal/domain/repository"
	"budget/internal/domain/service"
	"budget/internal/errors"
)

// DemoPassword is the password of every seeded user.
const DemoPassword = "12345678"

type demoTransaction struct {
	user   int
	place  int
	amount float64
	date   time.Time
}

func at(day, hour, minute int) time.Time {
	return time.Date(2021, time.May, day, hour, minute, 0, 0, time.UTC)
}

func ratingOf(r int) *int {
	return &r
}

// Run inserts the demo data in one unit of work. It fails on the first
// conflict, so running it twice against the same store leaves the data unchanged.
func Run(ctx context.Context, txManager repository.TransactionManager, hasher service.PasswordHasher, logger *slog.Logger) error {
	hash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash demo password")
	}

	users := []*entity.User{
		{Name: "Thomas Aelbrecht", Email: "thomas.aelbrecht@hogent.be", PasswordHash: hash, Roles: entity.Roles{entity.RoleAdmin, entity.RoleUser}},
		{Name: "Pieter Van Der Helst", Email: "pieter.vanderhelst@hogent.be", PasswordHash: hash, Roles: entity.Roles{entity.RoleUser}},
		{Name: "Karine Samyn", Email: "karine.samyn@hogent.be", PasswordHash: hash, Roles: entity.Roles{entity.RoleUser}},
	}
	places := []*entity.Place{
		{Name: "Loon", Rating: ratingOf(5)},
		{Name: "Dranken Geers", Rating: ratingOf(3)},
		{Name: "Irish Pub", Rating: ratingOf(4)},
	}
	transactions := []demoTransaction{
		{user: 0, place: 0, amount: 3500, date: at(25, 19, 40)},
		{user: 0, place: 1, amount: -220, date: at(8, 20, 0)},
		{user: 0, place: 2, amount: -74, date: at(21, 14, 30)},
		{user: 1, place: 0, amount: 4000, date: at(25, 19, 40)},
		{user: 1, place: 1, amount: -220, date: at(9, 23, 0)},
		{user: 1, place: 2, amount: -74, date: at(22, 12, 0)},
		{user: 2, place: 0, amount: 4000, date: at(25, 19, 40)},
		{user: 2, place: 1, amount: -220, date: at(10, 10, 0)},
		{user: 2, place: 2, amount: -74, date: at(19, 11, 30)},
	}

	err = txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		for _, user := range users {
			if err := repos.UserRepo().Create(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to seed user %s", user.Email)
			}
		}
		for _, place := range places {
			if err := repos.PlaceRepo().Create(ctx, place); err != nil {
				return errors.Wrapf(err, "failed to seed place %s", place.Name)
			}
		}
		for _, tx := range transactions {
			if err := repos.TransactionRepo().Create(ctx, &entity.Transaction{
				Amount:  tx.amount,
				Date:    tx.date,
				UserID:  users[tx.user].ID,
				PlaceID: places[tx.place].ID,
			}); err != nil {
				return errors.Wrap(err, "failed to seed transaction")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Demo data seeded",
		slog.Int("users", len(users)),
		slog.Int("places", len(places)),
		slog.Int("transactions", len(transactions)),
	)

	return nil
}
