package main

import (
	"context"
	"log/slog"
	"os"

	"planner/config"
	"planner/internal/delivery"
	"planner/internal/delivery/api"
	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/router/handler"
	"planner/internal/infra/auth"
	"planner/internal/infra/keepalive"
	logs "planner/internal/infra/log"
	"planner/internal/infra/persistence/mongodb"
	"planner/internal/infra/persistence/postgres"
	"planner/internal/infra/validation"
	"planner/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.Storage.Driver),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		validation.New,
		keepalive.New,
	)
}

// injectRepo provides the repositories of the configured storage driver.
func injectRepo(driver string) fx.Option {
	if driver == config.StoragePostgres {
		return fx.Provide(
			postgres.New,
			postgres.NewAccountRepository,
			postgres.NewTaskRepository,
			postgres.NewActivityRepository,
			postgres.NewNoteRepository,
		)
	}

	return fx.Provide(
		mongodb.New,
		mongodb.NewAccountRepository,
		mongodb.NewTaskRepository,
		mongodb.NewActivityRepository,
		mongodb.NewNoteRepository,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewTaskService,
			impl.NewActivityService,
			impl.NewNoteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewTaskHandler,
			handler.NewActivityHandler,
			handler.NewNoteHandler,
			handler.NewSystemHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
