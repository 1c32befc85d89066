// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// licenseRepository implements the repository.LicenseRepository interface.
type licenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository is the constructor for licenseRepository.
func NewLicenseRepository(db *gorm.DB) repository.LicenseRepository {
	return &licenseRepository{
		db: db,
	}
}

// List returns all licenses, newest first. Reads may be served by a replica.
func (repo *licenseRepository) List(ctx context.Context) ([]*entity.License, error) {
	var licenseModels []*model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("created_at DESC").
		Order("id DESC").
		Find(&licenseModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list licenses")
	}

	licenses := make([]*entity.License, 0, len(licenseModels))
	for _, licenseM := range licenseModels {
		licenses = append(licenses, toLicenseDomain(licenseM))
	}

	return licenses, nil
}

// FindByID retrieves a license by its identifier.
func (repo *licenseRepository) FindByID(ctx context.Context, id int64) (*entity.License, error) {
	var licenseM model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&licenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLicenseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find license by ID")
	}

	return toLicenseDomain(&licenseM), nil
}

// FindByKey retrieves a license by exact key match. Always read from the primary
// so a freshly issued key verifies immediately.
func (repo *licenseRepository) FindByKey(ctx context.Context, key string) (*entity.License, error) {
	var licenseM model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("key = ?", key).
		First(&licenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLicenseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find license by key")
	}

	return toLicenseDomain(&licenseM), nil
}

// Create persists a new license. Inside an open transaction the insert runs under
// a savepoint, so a duplicate key leaves the transaction usable for a retry.
func (repo *licenseRepository) Create(ctx context.Context, license *entity.License) error {
	licenseM := fromLicenseDomain(license)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(licenseM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLicenseKey
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required license information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create license")
	}

	license.ID = licenseM.ID
	license.CreatedAt = licenseM.CreatedAt

	return nil
}

// Update applies the non-nil fields of patch and returns the stored license.
func (repo *licenseRepository) Update(ctx context.Context, id int64, patch *entity.LicensePatch) (*entity.License, error) {
	updates := licensePatchColumns(patch)

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.LicenseModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update license")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrLicenseNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a license. A missing row is not an error.
func (repo *licenseRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LicenseModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete license")
	}

	return nil
}

// MarkChecked stores the time of the last successful verification.
func (repo *licenseRepository) MarkChecked(ctx context.Context, id int64, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Where("id = ?", id).
		Update("last_checked_at", at.UTC()).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark license checked")
	}

	return nil
}

// Count returns the number of stored licenses.
func (repo *licenseRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count licenses")
	}

	return count, nil
}

// licensePatchColumns maps a patch to column updates. A map is used so that
// false and NULL values are written.
func licensePatchColumns(patch *entity.LicensePatch) map[string]any {
	updates := make(map[string]any)
	if patch == nil {
		return updates
	}

	if patch.ClientName != nil {
		updates["client_name"] = *patch.ClientName
	}
	if patch.Email != nil {
		updates["email"] = nullableString(*patch.Email)
	}
	if patch.DiscordID != nil {
		updates["discord_id"] = nullableString(*patch.DiscordID)
	}
	if patch.Description != nil {
		updates["description"] = nullableString(*patch.Description)
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.ClearExpiresAt {
		updates["expires_at"] = nil
	} else if patch.ExpiresAt != nil {
		updates["expires_at"] = patch.ExpiresAt.UTC()
	}

	return updates
}

// nullableString stores an empty string as NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

// --- Mapper Functions ---

// toLicenseDomain converts a GORM LicenseModel to a domain License entity.
func toLicenseDomain(data *model.LicenseModel) *entity.License {
	if data == nil {
		return nil
	}

	return &entity.License{
		ID:            data.ID,
		Key:           data.Key,
		ClientName:    data.ClientName,
		Email:         data.Email,
		DiscordID:     data.DiscordID,
		Description:   data.Description,
		IsActive:      data.IsActive,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		LastCheckedAt: data.LastCheckedAt,
	}
}

// fromLicenseDomain converts a domain License entity to a GORM LicenseModel.
func fromLicenseDomain(data *entity.License) *model.LicenseModel {
	if data == nil {
		return nil
	}

	return &model.LicenseModel{
		ID:            data.ID,
		Key:           data.Key,
		ClientName:    data.ClientName,
		Email:         data.Email,
		DiscordID:     data.DiscordID,
		Description:   data.Description,
		IsActive:      data.IsActive,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		LastCheckedAt: data.LastCheckedAt,
	}
}
