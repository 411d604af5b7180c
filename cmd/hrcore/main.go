package main

import (
	"context"
	"log/slog"
	"os"

	"hrcore/config"
	"hrcore/internal/delivery"
	"hrcore/internal/delivery/http"
	"hrcore/internal/delivery/http/middleware"
	"hrcore/internal/delivery/http/router/handler"
	"hrcore/internal/infra/auth"
	"hrcore/internal/infra/auth/google"
	logs "hrcore/internal/infra/log"
	"hrcore/internal/infra/mail"
	"hrcore/internal/infra/persistence/mongodb"
	"hrcore/internal/infra/persistence/postgres"
	"hrcore/internal/infra/storage"
	"hrcore/internal/usecase/impl"

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
		logs.New,
		context.Background,
		postgres.New,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFaultRepository,
			postgres.NewUserFileRepository,
			postgres.NewPaysheetRepository,
			postgres.NewEducationRepository,
			postgres.NewGenericRepository,
			postgres.NewRoleResolver,
			mongodb.NewFileMetadataRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			storage.NewBlobStore,
			mail.NewSMTPMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewFileService,
			impl.NewPaysheetService,
			impl.NewEducationService,
			impl.NewGenericService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRefreshMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPaysheetHandler,
			handler.NewEducationHandler,
			handler.NewGenericHandler,
			handler.NewFileHandler,
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
