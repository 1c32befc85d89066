package main

import (
	"context"
	"log/slog"
	"os"

	"keygate/config"
	"keygate/internal/delivery"
	"keygate/internal/delivery/api"
	apimiddleware "keygate/internal/delivery/api/middleware"
	"keygate/internal/delivery/api/router/handler"
	discorddelivery "keygate/internal/delivery/discord"
	"keygate/internal/domain/lifecycle"
	"keygate/internal/domain/service"
	"keygate/internal/infra/auth"
	"keygate/internal/infra/keygen"
	logs "keygate/internal/infra/log"
	"keygate/internal/infra/notification"
	"keygate/internal/infra/notification/discord"
	"keygate/internal/infra/persistence/postgres"
	"keygate/internal/infra/pubsub"
	"keygate/internal/infra/qrcode"
	"keygate/internal/usecase"
	"keygate/internal/usecase/impl"

	"go.uber.org/fx"
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
		pubsub.Module,
		fx.Invoke(
			postgres.RegisterMigrations,
			seedExamples,
			startServer,
			connectChat,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLicenseRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			keygen.NewUUIDGenerator,
			qrcode.NewFromConfig,
			fx.Annotate(
				discord.NewSession,
				fx.As(fx.Self()),
				fx.As(new(service.ChatSession)),
				fx.As(new(discorddelivery.ChatSession)),
			),
			fx.Annotate(
				notification.NewSMTPNotifier,
				fx.ResultTags(`name:"email"`),
			),
			fx.Annotate(
				discord.NewChatNotifier,
				fx.ResultTags(`name:"chat"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewNotificationService,
				fx.ParamTags(``, `name:"email"`, `name:"chat"`),
			),
			impl.NewLicenseService,
			impl.NewVerificationService,
			impl.NewSettingsService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAdminAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewLicenseHandler,
			handler.NewSettingsHandler,
			handler.NewVerifyHandler,
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
			fx.Annotate(
				newChatDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newChatDeliveries serves the slash commands only when the bot is enabled.
func newChatDeliveries(params discorddelivery.BotParams) ([]delivery.Delivery, error) {
	if params.Config.Discord == nil || !params.Config.Discord.Enabled {
		return nil, nil
	}

	bot, err := discorddelivery.NewBot(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{bot}, nil
}

// connectChat opens the bot connection from the stored settings once the schema is in place.
func connectChat(lc fx.Lifecycle, settingsUC usecase.SettingsUsecase, session *discord.Session, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			settings, err := settingsUC.Get(ctx)
			if err != nil {
				logger.Warn("Skipping Discord connection, settings unavailable", slog.Any("error", err))

				return nil
			}
			if err := session.Reload(ctx, settings); err != nil {
				logger.Warn("Failed to connect Discord bot", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return session.Close()
		},
	})
}

func seedExamples(lc fx.Lifecycle, cfg *config.Config, licenseUC usecase.LicenseUsecase) {
	if !cfg.License.SeedExamples {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return licenseUC.SeedExamples(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
