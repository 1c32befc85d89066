// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"keygate/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for license persistence.
var (
	// ErrLicenseNotFound is returned when no license matches the id or key.
	ErrLicenseNotFound = errors.New("license not found")
	// ErrDuplicateLicenseKey is returned when a generated key already exists.
	ErrDuplicateLicenseKey = errors.New("license key already exists")
)

// LicenseRepository defines the interface for license-related database operations.
type LicenseRepository interface {
	// List returns every license, newest created first.
	List(ctx context.Context) ([]*entity.License, error)

	// FindByID retrieves a license by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.License, error)

	// FindByKey retrieves a license by exact key match.
	FindByKey(ctx context.Context, key string) (*entity.License, error)

	// Create persists a new license. ID and CreatedAt are assigned by the store.
	Create(ctx context.Context, license *entity.License) error

	// Update applies a partial update and returns the stored license.
	Update(ctx context.Context, id int64, patch *entity.LicensePatch) (*entity.License, error)

	// Delete removes a license. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error

	// MarkChecked records a successful verification time.
	MarkChecked(ctx context.Context, id int64, at time.Time) error

	// Count returns the number of stored licenses.
	Count(ctx context.Context) (int64, error)
}
