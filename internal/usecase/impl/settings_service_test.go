package impl

import (
	"context"
	"testing"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/repository"
	mockRepo "keygate/internal/mocks/repository"
	mockSvc "keygate/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsServiceFixtures struct {
	service      *settingsService
	settingsRepo *mockRepo.MockSettingsRepository
	txManager    *mockRepo.MockTransactionManager
	chatSession  *mockSvc.MockChatSession
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	fixtures := settingsServiceFixtures{
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		chatSession:  mockSvc.NewMockChatSession(t),
	}

	fixtures.service = NewSettingsService(
		fixtures.settingsRepo,
		fixtures.txManager,
		fixtures.chatSession,
		newTestLogger(),
	).(*settingsService)

	return fixtures
}

// expectSettingsTx runs the transactional callback against txRepo.
func expectSettingsTx(t *testing.T, fx settingsServiceFixtures, ctx context.Context) *mockRepo.MockSettingsRepository {
	txRepo := mockRepo.NewMockSettingsRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSettingsRepository().Return(txRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txRepo
}

func TestSettingsService_Get(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	stored := &entity.Settings{ID: 1, SMTPHost: strPtr("smtp.acme.test")}

	fx.settingsRepo.EXPECT().Get(ctx).Return(stored, nil)

	settings, err := fx.service.Get(ctx)

	require.NoError(t, err)
	assert.Same(t, stored, settings)
}

func TestSettingsService_Get_AbsentReturnsEmpty(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingsNotFound)

	settings, err := fx.service.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.Settings{}, settings)
}

func TestSettingsService_Save_ReloadsChatSession(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	input := &entity.Settings{DiscordToken: strPtr("bot-token")}
	saved := &entity.Settings{ID: 1, DiscordToken: strPtr("bot-token")}

	txRepo := expectSettingsTx(t, fx, ctx)
	txRepo.EXPECT().Upsert(ctx, input).Return(saved, nil)
	fx.chatSession.EXPECT().Reload(ctx, saved).Return(nil)

	got, err := fx.service.Save(ctx, input)

	require.NoError(t, err)
	assert.Same(t, saved, got)
}

func TestSettingsService_Save_ReloadFailureIsLogged(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	saved := &entity.Settings{ID: 1}

	txRepo := expectSettingsTx(t, fx, ctx)
	txRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Settings")).Return(saved, nil)
	fx.chatSession.EXPECT().Reload(ctx, saved).Return(errors.New("invalid token"))

	got, err := fx.service.Save(ctx, &entity.Settings{})

	require.NoError(t, err)
	assert.Same(t, saved, got)
}

func TestSettingsService_Save_UpsertError(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	dbErr := errors.New("deadlock detected")

	txRepo := expectSettingsTx(t, fx, ctx)
	txRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Settings")).Return(nil, dbErr)

	got, err := fx.service.Save(ctx, &entity.Settings{})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, dbErr)
	fx.chatSession.AssertNotCalled(t, "Reload", mock.Anything, mock.Anything)
}
