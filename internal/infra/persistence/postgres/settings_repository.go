package postgres

import (
	"context"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the first settings row.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsM model.SettingsModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Upsert overwrites the existing row in place, or inserts the first one.
func (repo *settingsRepository) Upsert(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	settingsM := fromSettingsDomain(settings)

	var existing model.SettingsModel
	err := repo.db.WithContext(ctx).
		Order("id ASC").
		First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settingsM.ID = 0
		if err := repo.db.WithContext(ctx).Create(settingsM).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create settings")
		}
	case err != nil:
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load settings")
	default:
		settingsM.ID = existing.ID
		// Select("*") writes nil fields too, so cleared values are persisted.
		if err := repo.db.WithContext(ctx).
			Model(settingsM).
			Select("*").
			Updates(settingsM).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update settings")
		}
	}

	return toSettingsDomain(settingsM), nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.SettingsModel) *entity.Settings {
	if data == nil {
		return nil
	}

	return &entity.Settings{
		ID:                     data.ID,
		DiscordToken:           data.DiscordToken,
		DiscordAdminID:         data.DiscordAdminID,
		DiscordLogsChannelID:   data.DiscordLogsChannelID,
		DiscordUpdateChannelID: data.DiscordUpdateChannelID,
		SMTPHost:               data.SMTPHost,
		SMTPPort:               data.SMTPPort,
		SMTPUser:               data.SMTPUser,
		SMTPPassword:           data.SMTPPassword,
		SMTPFrom:               data.SMTPFrom,
		LicenseEmailTemplate:   data.LicenseEmailTemplate,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.Settings) *model.SettingsModel {
	if data == nil {
		return &model.SettingsModel{}
	}

	return &model.SettingsModel{
		ID:                     data.ID,
		DiscordToken:           data.DiscordToken,
		DiscordAdminID:         data.DiscordAdminID,
		DiscordLogsChannelID:   data.DiscordLogsChannelID,
		DiscordUpdateChannelID: data.DiscordUpdateChannelID,
		SMTPHost:               data.SMTPHost,
		SMTPPort:               data.SMTPPort,
		SMTPUser:               data.SMTPUser,
		SMTPPassword:           data.SMTPPassword,
		SMTPFrom:               data.SMTPFrom,
		LicenseEmailTemplate:   data.LicenseEmailTemplate,
		UpdatedAt:              data.UpdatedAt,
	}
}
