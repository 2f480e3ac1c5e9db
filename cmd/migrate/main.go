// Command migrate applies the embedded schema migrations to PostgreSQL and
// exits.
package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"budget/config"
	"budget/internal/errors"
	logs "budget/internal/infra/log"
	"budget/internal/infra/persistence/postgres"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		// The database start hook migrates when this flag is set.
		fx.Decorate(func(cfg *config.Config) (*config.Config, error) {
			if cfg.Postgres == nil {
				return nil, errors.New("postgres section is required to migrate")
			}
			migrating := *cfg
			migrating.Persistence.Migrate = true

			return &migrating, nil
		}),
		fx.Invoke(run),
	).Run()
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *slog.Logger, _ *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("Migrations complete")

			return shutdowner.Shutdown()
		},
	})
}
