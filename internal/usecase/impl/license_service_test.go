package impl

import (
	"context"
	"testing"
	"time"

	"keygate/config"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	mockRepo "keygate/internal/mocks/repository"
	mockSvc "keygate/internal/mocks/service"
	mockUsecase "keygate/internal/mocks/usecase"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// licenseServiceFixtures holds all test dependencies for license service tests.
type licenseServiceFixtures struct {
	service        *licenseService
	licenseRepo    *mockRepo.MockLicenseRepository
	txManager      *mockRepo.MockTransactionManager
	keyGen         *mockSvc.MockKeyGenerator
	qrcodeSvc      *mockSvc.MockQRCodeService
	notificationUC *mockUsecase.MockNotificationUsecase
	publisher      *mockSvc.MockEventPublisher
	now            time.Time
}

func createTestLicenseService(t *testing.T, withPublisher bool) licenseServiceFixtures {
	fixtures := licenseServiceFixtures{
		licenseRepo:    mockRepo.NewMockLicenseRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		keyGen:         mockSvc.NewMockKeyGenerator(t),
		qrcodeSvc:      mockSvc.NewMockQRCodeService(t),
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		now:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var publisher service.EventPublisher
	if withPublisher {
		publisher = fixtures.publisher
	}

	svc := NewLicenseService(
		fixtures.licenseRepo,
		fixtures.txManager,
		fixtures.keyGen,
		fixtures.qrcodeSvc,
		fixtures.notificationUC,
		publisher,
		&config.Config{},
		newTestLogger(),
	).(*licenseService)
	svc.now = func() time.Time { return fixtures.now }
	svc.announcer.async = func(fn func()) { fn() }
	fixtures.service = svc

	return fixtures
}

func TestLicenseService_Issue_Lifetime(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("key-1", nil)
	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Run(func(_ context.Context, license *entity.License) {
			license.ID = 7
		}).
		Return(nil)
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventGenerated).
		Return(nil)

	license, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), license.ID)
	assert.Equal(t, "key-1", license.Key)
	assert.Equal(t, "Acme Corp", license.ClientName)
	assert.True(t, license.IsActive)
	assert.Nil(t, license.ExpiresAt)
	assert.True(t, license.IsValidAt(fx.now))
}

func TestLicenseService_Issue_WithExpiry(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("key-30", nil)
	fx.licenseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.License")).Return(nil)
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventGenerated).
		Return(nil)

	license, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{
		ClientName:    "Beta Testers",
		Email:         strPtr("beta@acme.test"),
		ExpiresInDays: 30,
	})

	require.NoError(t, err)
	require.NotNil(t, license.ExpiresAt)
	assert.WithinDuration(t, license.CreatedAt.Add(30*24*time.Hour), *license.ExpiresAt, time.Second)
	assert.Equal(t, "beta@acme.test", *license.Email)
}

func TestLicenseService_Issue_NonPositiveDaysIsLifetime(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("key-0", nil)
	fx.licenseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.License")).Return(nil)
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventGenerated).
		Return(nil)

	license, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme", ExpiresInDays: -3})

	require.NoError(t, err)
	assert.Nil(t, license.ExpiresAt)
}

func TestLicenseService_Issue_RequiresClientName(t *testing.T) {
	fx := createTestLicenseService(t, false)

	license, err := fx.service.Issue(context.Background(), &usecase.IssueLicenseInput{ClientName: "   "})

	require.Error(t, err)
	assert.Nil(t, license)

	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "clientName", fieldErr.Field())
}

func TestLicenseService_Issue_RetriesOnceOnKeyCollision(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("taken", nil).Once()
	fx.keyGen.EXPECT().Generate().Return("fresh", nil).Once()
	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Return(repository.ErrDuplicateLicenseKey).Once()
	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Return(nil).Once()
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventGenerated).
		Return(nil)

	license, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme"})

	require.NoError(t, err)
	assert.Equal(t, "fresh", license.Key)
}

func TestLicenseService_Issue_FailsAfterSecondCollision(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("taken", nil).Times(2)
	fx.licenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Return(repository.ErrDuplicateLicenseKey).Times(2)

	license, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme"})

	require.Error(t, err)
	assert.Nil(t, license)
	assert.True(t, errors.Is(err, domainerrors.ErrLicenseKeyCollision))
}

func TestLicenseService_Issue_StorageError(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.keyGen.EXPECT().Generate().Return("key", nil)
	fx.licenseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.License")).Return(dbErr)

	license, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme"})

	require.Error(t, err)
	assert.Nil(t, license)
	assert.ErrorIs(t, err, dbErr)
}

func TestLicenseService_Issue_NotificationFailureIsSwallowed(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("key", nil)
	fx.licenseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.License")).Return(nil)
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventGenerated).
		Return(errors.New("settings unavailable"))

	license, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme"})

	require.NoError(t, err)
	assert.NotNil(t, license)
}

func TestLicenseService_Issue_PublishesEvent(t *testing.T) {
	fx := createTestLicenseService(t, true)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("key-pub", nil)
	fx.licenseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.License")).Return(nil)
	fx.publisher.EXPECT().
		PublishLicenseEvent(mock.Anything, mock.MatchedBy(func(event *service.LicenseEvent) bool {
			return event.Type == entity.EventGenerated && event.License.Key == "key-pub"
		})).
		Return(nil)

	_, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme"})

	require.NoError(t, err)
}

func TestLicenseService_Issue_PublishFailureFallsBackToInProcess(t *testing.T) {
	fx := createTestLicenseService(t, true)
	ctx := context.Background()

	fx.keyGen.EXPECT().Generate().Return("key", nil)
	fx.licenseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.License")).Return(nil)
	fx.publisher.EXPECT().
		PublishLicenseEvent(mock.Anything, mock.AnythingOfType("*service.LicenseEvent")).
		Return(errors.New("topic unavailable"))
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventGenerated).
		Return(nil)

	_, err := fx.service.Issue(ctx, &usecase.IssueLicenseInput{ClientName: "Acme"})

	require.NoError(t, err)
}

func TestLicenseService_Get_NotFound(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrLicenseNotFound)

	license, err := fx.service.Get(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, license)
	assert.True(t, errors.Is(err, domainerrors.ErrLicenseNotFound))
}

func TestLicenseService_SetActive_Revoke(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	revoked := newTestLicense(3, "key-3")
	revoked.IsActive = false
	revoked.ExpiresAt = timePtr(fx.now.Add(48 * time.Hour))

	fx.licenseRepo.EXPECT().
		Update(ctx, int64(3), mock.MatchedBy(func(patch *entity.LicensePatch) bool {
			return patch.IsActive != nil && !*patch.IsActive && patch.ExpiresAt == nil && !patch.ClearExpiresAt
		})).
		Return(revoked, nil)
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventRevoked).
		Return(nil)

	license, err := fx.service.SetActive(ctx, 3, false)

	require.NoError(t, err)
	assert.False(t, license.IsActive)
	assert.NotNil(t, license.ExpiresAt)
}

func TestLicenseService_SetActive_Activate(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		Update(ctx, int64(3), mock.AnythingOfType("*entity.LicensePatch")).
		Return(newTestLicense(3, "key-3"), nil)
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventActivated).
		Return(nil)

	license, err := fx.service.SetActive(ctx, 3, true)

	require.NoError(t, err)
	assert.True(t, license.IsActive)
}

func TestLicenseService_SetActive_NotFound(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().
		Update(ctx, int64(9), mock.AnythingOfType("*entity.LicensePatch")).
		Return(nil, repository.ErrLicenseNotFound)

	_, err := fx.service.SetActive(ctx, 9, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLicenseNotFound))
}

func TestLicenseService_UpdateFields_MetadataOnly(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	existing := newTestLicense(5, "key-5")
	updated := newTestLicense(5, "key-5")
	updated.ClientName = "Acme Renamed"
	patch := &entity.LicensePatch{ClientName: strPtr("Acme Renamed")}

	fx.licenseRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	fx.licenseRepo.EXPECT().Update(ctx, int64(5), patch).Return(updated, nil)

	license, err := fx.service.UpdateFields(ctx, 5, patch)

	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", license.ClientName)
}

func TestLicenseService_UpdateFields_ReactivationIsAnnounced(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	existing := newTestLicense(5, "key-5")
	existing.IsActive = false
	active := true
	patch := &entity.LicensePatch{IsActive: &active}

	fx.licenseRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	fx.licenseRepo.EXPECT().Update(ctx, int64(5), patch).Return(newTestLicense(5, "key-5"), nil)
	fx.notificationUC.EXPECT().
		Announce(mock.Anything, mock.AnythingOfType("*entity.License"), entity.EventActivated).
		Return(nil)

	_, err := fx.service.UpdateFields(ctx, 5, patch)

	require.NoError(t, err)
}

func TestLicenseService_UpdateFields_EmptyPatchReturnsCurrent(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	existing := newTestLicense(5, "key-5")
	fx.licenseRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)

	license, err := fx.service.UpdateFields(ctx, 5, &entity.LicensePatch{})

	require.NoError(t, err)
	assert.Same(t, existing, license)
}

func TestLicenseService_UpdateFields_RejectsBlankClientName(t *testing.T) {
	fx := createTestLicenseService(t, false)

	_, err := fx.service.UpdateFields(context.Background(), 5, &entity.LicensePatch{ClientName: strPtr("")})

	var fieldErr *domainerrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "clientName", fieldErr.Field())
}

func TestLicenseService_UpdateFields_NotFound(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrLicenseNotFound)

	_, err := fx.service.UpdateFields(ctx, 8, &entity.LicensePatch{Description: strPtr("x")})

	assert.True(t, errors.Is(err, domainerrors.ErrLicenseNotFound))
}

func TestLicenseService_Remove_Success(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().FindByID(ctx, int64(2)).Return(newTestLicense(2, "key-2"), nil)
	fx.licenseRepo.EXPECT().Delete(ctx, int64(2)).Return(nil)

	require.NoError(t, fx.service.Remove(ctx, 2))
}

func TestLicenseService_Remove_NotFoundSkipsDelete(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	fx.licenseRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrLicenseNotFound)

	err := fx.service.Remove(ctx, 2)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLicenseNotFound))
	fx.licenseRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLicenseService_Stats(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	expired := newTestLicense(1, "a")
	expired.ExpiresAt = timePtr(fx.now.Add(-time.Hour))
	revoked := newTestLicense(2, "b")
	revoked.IsActive = false
	active := newTestLicense(3, "c")

	fx.licenseRepo.EXPECT().List(ctx).Return([]*entity.License{expired, revoked, active}, nil)

	stats, err := fx.service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.LicenseStats{Total: 3, Active: 1, Revoked: 1, Expired: 1}, stats)
}

func TestLicenseService_QRCode(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.licenseRepo.EXPECT().FindByID(ctx, int64(4)).Return(newTestLicense(4, "key-4"), nil)
	fx.qrcodeSvc.EXPECT().GenerateKeyQR("key-4").Return(png, nil)

	got, err := fx.service.QRCode(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestLicenseService_SeedExamples_EmptyTable(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	txRepo := mockRepo.NewMockLicenseRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewLicenseRepository().Return(txRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	var created []*entity.License
	txRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	fx.keyGen.EXPECT().Generate().Return("seed-key", nil).Times(2)
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.License")).
		Run(func(_ context.Context, license *entity.License) {
			created = append(created, license)
		}).
		Return(nil).Times(2)

	require.NoError(t, fx.service.SeedExamples(ctx))

	require.Len(t, created, 2)
	assert.True(t, created[0].IsLifetime())
	require.NotNil(t, created[1].ExpiresAt)
	assert.WithinDuration(t, fx.now.Add(30*24*time.Hour), *created[1].ExpiresAt, time.Second)
}

func TestLicenseService_SeedExamples_SkipsWhenPopulated(t *testing.T) {
	fx := createTestLicenseService(t, false)
	ctx := context.Background()

	txRepo := mockRepo.NewMockLicenseRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewLicenseRepository().Return(txRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	txRepo.EXPECT().Count(ctx).Return(int64(2), nil)

	require.NoError(t, fx.service.SeedExamples(ctx))
}
