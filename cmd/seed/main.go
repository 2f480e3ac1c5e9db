// Command seed loads the demo users, places and transactions into the
// configured store.
package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"budget/config"
	"budget/internal/domain/repository"
	"budget/internal/domain/service"
	"budget/internal/infra/auth"
	logs "budget/internal/infra/log"
	"budget/internal/infra/persistence"
	"budget/internal/infra/persistence/seed"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			persistence.New,
			auth.NewArgon2Hasher,
		),
		fx.Invoke(run),
	).Run()
}

func run(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := seed.Run(context.Background(), params.TxManager, params.Hasher, params.Logger); err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
