package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	txManager    repository.TransactionManager
	chatSession  service.ChatSession
	logger       *slog.Logger
}

// NewSettingsService creates the settings service. chatSession may be nil.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	txManager repository.TransactionManager,
	chatSession service.ChatSession,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		chatSession:  chatSession,
		logger:       logger,
	}
}

// Get returns the stored settings or an empty record.
func (s *settingsService) Get(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return &entity.Settings{}, nil
		}

		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// Save upserts the singleton row, then rebuilds the chat session from it.
// A chat reload failure is logged; the settings stay saved.
func (s *settingsService) Save(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	var saved *entity.Settings

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		saved, err = repoFactory.NewSettingsRepository().Upsert(ctx, settings)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Settings saved", slog.Int64("settings_id", saved.ID))

	if s.chatSession != nil {
		if err := s.chatSession.Reload(ctx, saved); err != nil {
			logger.Warn("Failed to reload chat session", slog.Any("error", err))
		}
	}

	return saved, nil
}
