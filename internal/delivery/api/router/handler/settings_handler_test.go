package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	mockUsecase "keygate/internal/mocks/usecase"
	"keygate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSettingsHandler(t *testing.T) (*SettingsHandler, *mockUsecase.MockSettingsUsecase, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	return NewSettingsHandler(SettingsHandlerParams{
		SettingsUC:     settingsUC,
		NotificationUC: notificationUC,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), settingsUC, notificationUC
}

func TestSettingsHandler_Save(t *testing.T) {
	t.Run("normalises and saves", func(t *testing.T) {
		h, settingsUC, _ := newSettingsHandler(t)
		settingsUC.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(s *entity.Settings) bool {
				return entity.Value(s.SMTPHost) == "smtp.acme.test" &&
					s.SMTPPort != nil && *s.SMTPPort == 465 &&
					s.DiscordToken == nil &&
					entity.Value(s.LicenseEmailTemplate) == "Key: {{key}}"
			})).
			Return(&entity.Settings{ID: 1, SMTPHost: strPtr("smtp.acme.test")}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/admin/settings",
			`{"smtpHost":" smtp.acme.test ","smtpPort":465,"discordToken":"","licenseEmailTemplate":"Key: {{key}}"}`, nil)

		require.NoError(t, h.Save(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "port out of range", body: `{"smtpPort":70000}`, wantField: "smtpPort"},
		{name: "bad sender", body: `{"smtpFrom":"not mail"}`, wantField: "smtpFrom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newSettingsHandler(t)
			c, rec := newTestContext(http.MethodPost, "/api/admin/settings", tt.body, nil)

			require.NoError(t, h.Save(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantField, errorField(t, decodeEnvelope(t, rec)))
		})
	}
}

func TestSettingsHandler_Get(t *testing.T) {
	h, settingsUC, _ := newSettingsHandler(t)
	settingsUC.EXPECT().Get(mock.Anything).Return(&entity.Settings{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/admin/settings", "", nil)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var settings entity.Settings
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &settings))
	assert.Nil(t, settings.SMTPHost)
}

func TestSettingsHandler_TestMail(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		h, _, notificationUC := newSettingsHandler(t)
		notificationUC.EXPECT().SendTestMail(mock.Anything, "ops@acme.test").Return(nil)

		c, rec := newTestContext(http.MethodPost, "/api/admin/smtp/test", `{"to":"ops@acme.test"}`, nil)

		require.NoError(t, h.TestMail(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not configured", func(t *testing.T) {
		h, _, notificationUC := newSettingsHandler(t)
		notificationUC.EXPECT().SendTestMail(mock.Anything, "ops@acme.test").Return(domainerrors.ErrMailNotConfigured)

		c, rec := newTestContext(http.MethodPost, "/api/admin/smtp/test", `{"to":"ops@acme.test"}`, nil)

		require.NoError(t, h.TestMail(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "SMTP_NOT_CONFIGURED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("delivery failure", func(t *testing.T) {
		h, _, notificationUC := newSettingsHandler(t)
		notificationUC.EXPECT().SendTestMail(mock.Anything, "ops@acme.test").
			Return(domainerrors.NewNotificationError("email", errors.New("connection refused")))

		c, rec := newTestContext(http.MethodPost, "/api/admin/smtp/test", `{"to":"ops@acme.test"}`, nil)

		require.NoError(t, h.TestMail(c))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("missing recipient", func(t *testing.T) {
		h, _, _ := newSettingsHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/admin/smtp/test", `{}`, nil)

		require.NoError(t, h.TestMail(c))
		assert.Equal(t, "to", errorField(t, decodeEnvelope(t, rec)))
	})
}

func TestSettingsHandler_Templates(t *testing.T) {
	h, _, _ := newSettingsHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/admin/templates", "", nil)

	require.NoError(t, h.Templates(c))

	var templates map[string]string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &templates))
	assert.Equal(t, usecase.DefaultLicenseEmailTemplate, templates["default"])
	assert.Contains(t, templates, "professional")
	assert.Contains(t, templates, "urgent")
}
