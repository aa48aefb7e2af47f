package main

import (
	"context"
	"log/slog"
	"os"

	"lectern/config"
	"lectern/internal/delivery"
	"lectern/internal/delivery/http"
	"lectern/internal/delivery/http/middleware"
	"lectern/internal/delivery/http/router/handler"
	"lectern/internal/infra/auth"
	logs "lectern/internal/infra/log"
	"lectern/internal/infra/persistence/postgres"
	"lectern/internal/infra/report"
	"lectern/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		config.New,
		newAuthConfig,
		logs.New,
		context.Background,
		postgres.New,
	)
}

// newAuthConfig exposes the token lifetime section for direct injection.
func newAuthConfig(cfg *config.Config) *config.AuthConfig {
	return cfg.Auth
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTeacherRepository,
			postgres.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2Hasher,
			auth.NewTokenGenerator,
			report.NewSlogReporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTeacherHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
