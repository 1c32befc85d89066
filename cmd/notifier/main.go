package main

import (
	"context"
	"log/slog"
	"os"

	"keygate/config"
	"keygate/internal/delivery"
	"keygate/internal/delivery/worker"
	"keygate/internal/delivery/worker/handler"
	"keygate/internal/domain/lifecycle"
	"keygate/internal/domain/repository"
	"keygate/internal/errors"
	logs "keygate/internal/infra/log"
	"keygate/internal/infra/notification"
	"keygate/internal/infra/notification/discord"
	"keygate/internal/infra/persistence/postgres"
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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
			postgres.NewSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			discord.NewSession,
			fx.Annotate(
				notification.NewSMTPNotifier,
				fx.ResultTags(`name:"email"`),
			),
			fx.Annotate(
				discord.NewChatNotifier,
				fx.ResultTags(`name:"chat"`),
			),
			fx.Annotate(
				impl.NewNotificationService,
				fx.ParamTags(``, `name:"email"`, `name:"chat"`),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// connectChat opens the bot connection used for log channel announcements.
// Settings changes made through the API take effect here on the next restart.
func connectChat(lc fx.Lifecycle, settingsRepo repository.SettingsRepository, session *discord.Session, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			settings, err := settingsRepo.Get(ctx)
			if errors.Is(err, repository.ErrSettingsNotFound) {
				return nil
			}
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
