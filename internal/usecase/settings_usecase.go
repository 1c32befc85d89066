package usecase

import (
	"context"

	"keygate/internal/domain/entity"
)

// SettingsUsecase reads and writes the singleton settings row
type SettingsUsecase interface {
	// Get returns the stored settings, or an empty record when none were saved.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save replaces the settings and reloads the chat session.
	Save(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
}
