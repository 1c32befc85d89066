package usecase

import (
	"context"

	"keygate/internal/domain/entity"
)

// IssueLicenseInput holds the caller-validated fields for a new license.
type IssueLicenseInput struct {
	ClientName    string
	Description   *string
	Email         *string
	DiscordID     *string
	ExpiresInDays int // Zero or negative means a lifetime license
}

// LicenseUsecase defines the license issuance and lifecycle use cases
type LicenseUsecase interface {
	// Issue creates a new active license with a fresh random key and announces it.
	Issue(ctx context.Context, input *IssueLicenseInput) (*entity.License, error)

	// List returns every license, newest first.
	List(ctx context.Context) ([]*entity.License, error)

	// Get returns a single license.
	Get(ctx context.Context, id int64) (*entity.License, error)

	// SetActive revokes or re-activates a license. Expiration is untouched.
	SetActive(ctx context.Context, id int64, active bool) (*entity.License, error)

	// UpdateFields applies a partial metadata or expiration edit.
	UpdateFields(ctx context.Context, id int64, patch *entity.LicensePatch) (*entity.License, error)

	// Remove deletes a license, failing with not found when it does not exist.
	Remove(ctx context.Context, id int64) error

	// Stats summarises licenses by status at the current time.
	Stats(ctx context.Context) (*entity.LicenseStats, error)

	// QRCode renders the license key as a PNG.
	QRCode(ctx context.Context, id int64) ([]byte, error)

	// SeedExamples inserts example licenses when none exist.
	SeedExamples(ctx context.Context) error
}
