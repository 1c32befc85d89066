package impl

import (
	"context"
	"testing"
	"time"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	mockRepo "keygate/internal/mocks/repository"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var verifyNow = time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

func createTestVerificationService(t *testing.T) (*verificationService, *mockRepo.MockLicenseRepository) {
	licenseRepo := mockRepo.NewMockLicenseRepository(t)
	svc := NewVerificationService(licenseRepo, newTestLogger()).(*verificationService)
	svc.now = func() time.Time { return verifyNow }

	return svc, licenseRepo
}

func TestVerificationService_Verify(t *testing.T) {
	past := verifyNow.Add(-time.Hour)
	future := verifyNow.Add(24 * time.Hour)

	tests := []struct {
		name        string
		license     *entity.License
		wantValid   bool
		wantMessage string
	}{
		{
			name:        "active lifetime",
			license:     &entity.License{ID: 1, Key: "k", ClientName: "Acme", IsActive: true},
			wantValid:   true,
			wantMessage: usecase.MessageActive,
		},
		{
			name:        "active with future expiry",
			license:     &entity.License{ID: 1, Key: "k", ClientName: "Acme", IsActive: true, ExpiresAt: &future},
			wantValid:   true,
			wantMessage: usecase.MessageActive,
		},
		{
			name:        "expired",
			license:     &entity.License{ID: 1, Key: "k", IsActive: true, ExpiresAt: &past},
			wantValid:   false,
			wantMessage: usecase.MessageExpired,
		},
		{
			name:        "expires exactly now",
			license:     &entity.License{ID: 1, Key: "k", IsActive: true, ExpiresAt: timePtr(verifyNow)},
			wantValid:   false,
			wantMessage: usecase.MessageExpired,
		},
		{
			name:        "revoked",
			license:     &entity.License{ID: 1, Key: "k", IsActive: false, ExpiresAt: &future},
			wantValid:   false,
			wantMessage: usecase.MessageRevoked,
		},
		{
			name:        "revoked takes precedence over expired",
			license:     &entity.License{ID: 1, Key: "k", IsActive: false, ExpiresAt: &past},
			wantValid:   false,
			wantMessage: usecase.MessageRevoked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, licenseRepo := createTestVerificationService(t)
			ctx := context.Background()

			licenseRepo.EXPECT().FindByKey(ctx, "k").Return(tt.license, nil)
			if tt.wantValid {
				licenseRepo.EXPECT().MarkChecked(ctx, tt.license.ID, verifyNow).Return(nil)
			}

			result, err := svc.Verify(ctx, "k")

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Equal(t, tt.license.IsValidAt(verifyNow), result.Valid)
			if tt.wantValid {
				require.NotNil(t, result.License)
				assert.Equal(t, tt.license.ClientName, result.License.ClientName)
				assert.Equal(t, tt.license.ExpiresAt, result.License.ExpiresAt)
			} else {
				assert.Nil(t, result.License)
			}
		})
	}
}

func TestVerificationService_Verify_UnknownKey(t *testing.T) {
	svc, licenseRepo := createTestVerificationService(t)
	ctx := context.Background()

	licenseRepo.EXPECT().FindByKey(ctx, "nope").Return(nil, repository.ErrLicenseNotFound)

	result, err := svc.Verify(ctx, "nope")

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid license key", result.Message)
	licenseRepo.AssertNotCalled(t, "MarkChecked", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerificationService_Verify_MarkCheckedFailureKeepsOutcome(t *testing.T) {
	svc, licenseRepo := createTestVerificationService(t)
	ctx := context.Background()

	licenseRepo.EXPECT().FindByKey(ctx, "k").Return(&entity.License{ID: 3, Key: "k", IsActive: true}, nil)
	licenseRepo.EXPECT().MarkChecked(ctx, int64(3), verifyNow).Return(errors.New("read-only transaction"))

	result, err := svc.Verify(ctx, "k")

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "License is active", result.Message)
}

func TestVerificationService_Verify_EmptyKey(t *testing.T) {
	svc, _ := createTestVerificationService(t)

	result, err := svc.Verify(context.Background(), "")

	assert.Nil(t, result)
	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "key", fieldErr.Field())
}

func TestVerificationService_Verify_StorageError(t *testing.T) {
	svc, licenseRepo := createTestVerificationService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	licenseRepo.EXPECT().FindByKey(ctx, "k").Return(nil, dbErr)

	result, err := svc.Verify(ctx, "k")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}
