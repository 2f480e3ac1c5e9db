package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"budget/config"
	"budget/internal/delivery"
	"budget/internal/delivery/api"
	apimiddleware "budget/internal/delivery/api/middleware"
	"budget/internal/delivery/api/router/handler"
	"budget/internal/delivery/api/validator"
	"budget/internal/infra/auth"
	logs "budget/internal/infra/log"
	"budget/internal/infra/persistence"
	"budget/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2Hasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHealthService,
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewPlaceService,
			impl.NewTransactionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			validator.New,
			apimiddleware.NewValidationMiddleware,
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewAuthDelayMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewSessionHandler,
			handler.NewUserHandler,
			handler.NewPlaceHandler,
			handler.NewTransactionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once the earlier start hooks, such as
// the database ping and migrations, have succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go serve(ctx, delivery, params.Shutdowner)
			}

			return nil
		},
	})
}

func serve(ctx context.Context, d delivery.Delivery, shutdowner fx.Shutdowner) {
	if err := d.Serve(ctx); err != nil {
		slog.Error("Failed to start server", slog.Any("error", err))

		// Trigger graceful shutdown to execute all OnStop hooks
		if shutdownErr := shutdowner.Shutdown(); shutdownErr != nil {
			slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}
	}
}
