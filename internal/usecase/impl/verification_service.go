package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
)

type verificationService struct {
	licenseRepo repository.LicenseRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewVerificationService creates the license verification engine.
func NewVerificationService(licenseRepo repository.LicenseRepository, logger *slog.Logger) usecase.VerificationUsecase {
	return &verificationService{
		licenseRepo: licenseRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Verify evaluates a key. Unknown, revoked and expired keys are negative results, not errors.
// Checks run in order: existence, revocation, expiration.
func (s *verificationService) Verify(ctx context.Context, key string) (*usecase.VerificationResult, error) {
	if key == "" {
		return nil, domainerrors.NewFieldError("key", "is required")
	}

	license, err := s.licenseRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrLicenseNotFound) {
			return rejected(usecase.MessageInvalidKey), nil
		}

		return nil, fmt.Errorf("failed to find license by key: %w", err)
	}

	now := s.now()
	switch license.StatusAt(now) {
	case entity.LicenseStatusRevoked:
		return rejected(usecase.MessageRevoked), nil
	case entity.LicenseStatusExpired:
		return rejected(usecase.MessageExpired), nil
	case entity.LicenseStatusActive:
	}

	if err := s.licenseRepo.MarkChecked(ctx, license.ID, now); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to record license check",
			slog.Int64("license_id", license.ID),
			slog.Any("error", err),
		)
	}

	return &usecase.VerificationResult{
		Valid:   true,
		Message: usecase.MessageActive,
		License: &usecase.VerifiedLicense{
			ClientName: license.ClientName,
			ExpiresAt:  license.ExpiresAt,
		},
	}, nil
}

func rejected(message string) *usecase.VerificationResult {
	return &usecase.VerificationResult{Valid: false, Message: message}
}
