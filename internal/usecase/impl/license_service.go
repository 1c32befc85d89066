// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"keygate/config"
	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
)

// issueKeyAttempts is the first try plus one retry after a key collision.
const issueKeyAttempts = 2

type licenseService struct {
	licenseRepo repository.LicenseRepository
	txManager   repository.TransactionManager
	keyGen      service.KeyGenerator
	qrcodeSvc   service.QRCodeService
	announcer   *licenseAnnouncer
	logger      *slog.Logger
	now         func() time.Time
}

// NewLicenseService creates the issuance and lifecycle service.
// publisher may be nil, in which case notifications are dispatched in-process.
func NewLicenseService(
	licenseRepo repository.LicenseRepository,
	txManager repository.TransactionManager,
	keyGen service.KeyGenerator,
	qrcodeSvc service.QRCodeService,
	notificationUC usecase.NotificationUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LicenseUsecase {
	return &licenseService{
		licenseRepo: licenseRepo,
		txManager:   txManager,
		keyGen:      keyGen,
		qrcodeSvc:   qrcodeSvc,
		announcer:   newLicenseAnnouncer(publisher, notificationUC, cfg.License.NotifyTimeout, logger),
		logger:      logger,
		now:         time.Now,
	}
}

func (s *licenseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Issue creates a new license with a random key and announces it.
func (s *licenseService) Issue(ctx context.Context, input *usecase.IssueLicenseInput) (*entity.License, error) {
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, domainerrors.NewFieldError("clientName", "is required")
	}

	now := s.now().UTC()
	license := &entity.License{
		ClientName:  input.ClientName,
		Description: input.Description,
		Email:       input.Email,
		DiscordID:   input.DiscordID,
		IsActive:    true,
		CreatedAt:   now,
	}
	if input.ExpiresInDays > 0 {
		expiresAt := now.AddDate(0, 0, input.ExpiresInDays)
		license.ExpiresAt = &expiresAt
	}

	if err := s.createWithFreshKey(ctx, s.licenseRepo, license); err != nil {
		return nil, err
	}

	s.log(ctx).Info("License issued",
		slog.Int64("license_id", license.ID),
		slog.String("key", license.MaskedKey()),
		slog.Bool("lifetime", license.IsLifetime()),
	)

	s.announcer.announce(ctx, license, entity.EventGenerated)

	return license, nil
}

// createWithFreshKey generates a key and persists the license, retrying once on a key collision.
func (s *licenseService) createWithFreshKey(ctx context.Context, repo repository.LicenseRepository, license *entity.License) error {
	for attempt := 1; ; attempt++ {
		key, err := s.keyGen.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate license key: %w", err)
		}
		license.Key = key

		err = repo.Create(ctx, license)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateLicenseKey) {
			return fmt.Errorf("failed to create license: %w", err)
		}
		if attempt >= issueKeyAttempts {
			return errors.Wrapf(domainerrors.ErrLicenseKeyCollision, "key collision after %d attempts", attempt)
		}

		s.log(ctx).Warn("License key collision, retrying with a new key", slog.Int("attempt", attempt))
	}
}

// List returns all licenses, newest first.
func (s *licenseService) List(ctx context.Context) ([]*entity.License, error) {
	licenses, err := s.licenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	return licenses, nil
}

// Get returns a single license.
func (s *licenseService) Get(ctx context.Context, id int64) (*entity.License, error) {
	license, err := s.licenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLicenseError(err, "failed to find license")
	}

	return license, nil
}

// SetActive revokes or re-activates a license.
func (s *licenseService) SetActive(ctx context.Context, id int64, active bool) (*entity.License, error) {
	license, err := s.licenseRepo.Update(ctx, id, &entity.LicensePatch{IsActive: &active})
	if err != nil {
		return nil, mapLicenseError(err, "failed to update license state")
	}

	event := entity.EventRevoked
	if active {
		event = entity.EventActivated
	}

	s.log(ctx).Info("License state changed", slog.Int64("license_id", id), slog.String("event", event.String()))
	s.announcer.announce(ctx, license, event)

	return license, nil
}

// UpdateFields applies a partial edit. A change of the active flag is announced like SetActive.
func (s *licenseService) UpdateFields(ctx context.Context, id int64, patch *entity.LicensePatch) (*entity.License, error) {
	if patch.ClientName != nil && strings.TrimSpace(*patch.ClientName) == "" {
		return nil, domainerrors.NewFieldError("clientName", "must not be empty")
	}

	existing, err := s.licenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLicenseError(err, "failed to find license")
	}
	if patch.IsEmpty() {
		return existing, nil
	}

	license, err := s.licenseRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapLicenseError(err, "failed to update license")
	}

	if patch.IsActive != nil && *patch.IsActive != existing.IsActive {
		event := entity.EventRevoked
		if *patch.IsActive {
			event = entity.EventActivated
		}
		s.announcer.announce(ctx, license, event)
	}

	return license, nil
}

// Remove deletes a license after checking that it exists.
func (s *licenseService) Remove(ctx context.Context, id int64) error {
	if _, err := s.licenseRepo.FindByID(ctx, id); err != nil {
		return mapLicenseError(err, "failed to find license")
	}

	if err := s.licenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}

	s.log(ctx).Info("License deleted", slog.Int64("license_id", id))

	return nil
}

// Stats counts licenses by their status right now.
func (s *licenseService) Stats(ctx context.Context) (*entity.LicenseStats, error) {
	licenses, err := s.licenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	stats := entity.TallyLicenses(licenses, s.now())

	return &stats, nil
}

// QRCode renders the key of a license as a PNG image.
func (s *licenseService) QRCode(ctx context.Context, id int64) ([]byte, error) {
	license, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateKeyQR(license.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}

// SeedExamples inserts a lifetime and a 30 day example license into an empty table.
func (s *licenseService) SeedExamples(ctx context.Context) error {
	now := s.now().UTC()
	trialExpiry := now.AddDate(0, 0, 30)
	lifetimeDesc := "Lifetime enterprise license"
	trialDesc := "Trial license"

	examples := []*entity.License{
		{ClientName: "Acme Corp (Lifetime)", Description: &lifetimeDesc, IsActive: true, CreatedAt: now},
		{ClientName: "Beta Testers (30 Days)", Description: &trialDesc, IsActive: true, ExpiresAt: &trialExpiry, CreatedAt: now},
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		licenseRepo := repoFactory.NewLicenseRepository()

		count, err := licenseRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count licenses: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, example := range examples {
			if err := s.createWithFreshKey(ctx, licenseRepo, example); err != nil {
				return err
			}
		}

		s.log(ctx).Info("Seeded example licenses", slog.Int("count", len(examples)))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to seed example licenses")
	}

	return nil
}

func mapLicenseError(err error, msg string) error {
	if errors.Is(err, repository.ErrLicenseNotFound) {
		return errors.Wrap(domainerrors.ErrLicenseNotFound, msg)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
