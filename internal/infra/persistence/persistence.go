// Package persistence selects the store behind the repository interfaces.
package persistence

import (
	"log/slog"

	"go.uber.org/fx"

	"budget/config"
	"budget/internal/domain/repository"
	"budget/internal/errors"
	"budget/internal/infra/persistence/memory"
	"budget/internal/infra/persistence/postgres"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories provided to the usecases.
type Repositories struct {
	fx.Out

	UserRepo        repository.UserRepository
	PlaceRepo       repository.PlaceRepository
	TransactionRepo repository.TransactionRepository
	TxManager       repository.TransactionManager
}

// New builds the repositories for the configured persistence driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Persistence.Driver {
	case config.DriverMemory:
		params.Logger.Warn("Using in-memory persistence, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			UserRepo:        memory.NewUserRepository(store),
			PlaceRepo:       memory.NewPlaceRepository(store),
			TransactionRepo: memory.NewTransactionRepository(store),
			TxManager:       memory.NewTransactionManager(store),
		}, nil

	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			UserRepo:        postgres.NewUserRepository(db),
			PlaceRepo:       postgres.NewPlaceRepository(db),
			TransactionRepo: postgres.NewTransactionRepository(db),
			TxManager:       postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown persistence driver: %q", params.Config.Persistence.Driver)
	}
}
