package repository

import (
	"context"

	"keygate/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned before the settings row has been written.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists the singleton settings row.
type SettingsRepository interface {
	// Get returns the settings row.
	Get(ctx context.Context) (*entity.Settings, error)

	// Upsert updates the existing row in place, or inserts it when absent.
	Upsert(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
}
