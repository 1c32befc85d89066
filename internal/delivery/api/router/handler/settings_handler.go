package handler

import (
	"log/slog"
	"net/http"

	"keygate/internal/delivery/api/response"
	"keygate/internal/domain/entity"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC     usecase.SettingsUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// SettingsHandler serves the notification settings routes
type SettingsHandler struct {
	settingsUC     usecase.SettingsUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC:     params.SettingsUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SaveSettingsRequest is the body of POST /api/admin/settings. It replaces the stored settings.
type SaveSettingsRequest struct {
	DiscordToken           *string `json:"discordToken"`
	DiscordAdminID         *string `json:"discordAdminId"`
	DiscordLogsChannelID   *string `json:"discordLogsChannelId"`
	DiscordUpdateChannelID *string `json:"discordUpdateChannelId"`
	SMTPHost               *string `json:"smtpHost"`
	SMTPPort               *int    `json:"smtpPort" validate:"omitempty,min=1,max=65535"`
	SMTPUser               *string `json:"smtpUser"`
	SMTPPassword           *string `json:"smtpPassword"`
	SMTPFrom               *string `json:"smtpFrom" validate:"omitempty,email"`
	LicenseEmailTemplate   *string `json:"licenseEmailTemplate"`
}

func (r *SaveSettingsRequest) settings() *entity.Settings {
	return &entity.Settings{
		DiscordToken:           trimmed(r.DiscordToken),
		DiscordAdminID:         trimmed(r.DiscordAdminID),
		DiscordLogsChannelID:   trimmed(r.DiscordLogsChannelID),
		DiscordUpdateChannelID: trimmed(r.DiscordUpdateChannelID),
		SMTPHost:               trimmed(r.SMTPHost),
		SMTPPort:               r.SMTPPort,
		SMTPUser:               trimmed(r.SMTPUser),
		SMTPPassword:           r.SMTPPassword,
		SMTPFrom:               trimmed(r.SMTPFrom),
		LicenseEmailTemplate:   r.LicenseEmailTemplate,
	}
}

// TestMailRequest is the body of POST /api/admin/smtp/test
type TestMailRequest struct {
	To string `json:"to" validate:"required,email"`
}

// Get returns the stored settings
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settingsUC.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// Save replaces the settings and reloads the chat bot
func (h *SettingsHandler) Save(c echo.Context) error {
	var req SaveSettingsRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	settings, err := h.settingsUC.Save(c.Request().Context(), req.settings())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// TestMail sends a test message through the stored SMTP settings
func (h *SettingsHandler) TestMail(c echo.Context) error {
	var req TestMailRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.notificationUC.SendTestMail(c.Request().Context(), req.To); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"sent": true})
}

// Templates lists the license email template presets
func (h *SettingsHandler) Templates(c echo.Context) error {
	return response.Success(c, http.StatusOK, usecase.LicenseEmailTemplates)
}
