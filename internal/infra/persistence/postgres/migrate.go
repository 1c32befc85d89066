package postgres

import (
	"context"
	"log/slog"

	"keygate/config"
	"keygate/internal/domain/lifecycle"
	"keygate/internal/errors"

	migrateV4 "github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// MigrateParams defines the parameters required to apply schema migrations
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// RegisterMigrations applies pending migrations on startup when enabled.
func RegisterMigrations(params MigrateParams) {
	if params.Config.Migration == nil || !params.Config.Migration.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout*3)
			defer cancel()

			return Migrate(ctx, params.DB, params.Config.Migration.Source, params.Logger)
		},
	})
}

// Migrate runs every pending "up" migration from source on a dedicated connection.
func Migrate(ctx context.Context, db *gorm.DB, source string, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}

	driver, err := migratePostgres.WithConnection(ctx, conn, &migratePostgres.Config{})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrateV4.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("source_error", srcErr), slog.Any("db_error", dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrateV4.ErrNoChange) {
			logger.Info("Database schema is up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, _ := m.Version()
	logger.Info("Database migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
