package usecase

import (
	"context"

	"keygate/internal/domain/entity"
)

// DefaultLicenseEmailTemplate is used when the settings carry no custom template.
const DefaultLicenseEmailTemplate = "Your license has been {{type}}. Key: {{key}}"

// LicenseEmailTemplates are the presets offered to administrators when editing the template.
var LicenseEmailTemplates = map[string]string{
	"default":      DefaultLicenseEmailTemplate,
	"professional": "Dear {{clientName}},\n\nYour Professional License has been {{type}}.\nKey: {{key}}\n\nThank you for choosing our service.",
	"urgent":       "ACTION REQUIRED: Your license was {{type}}.\nKey: {{key}}\n\nPlease keep this safe.",
}

// NotificationUsecase renders and delivers license notifications
type NotificationUsecase interface {
	// Dispatch sends event notifications for license using the caller-supplied settings.
	// Channel failures are logged and swallowed.
	Dispatch(ctx context.Context, license *entity.License, event entity.NotificationEventType, settings *entity.Settings)

	// Announce loads the current settings and dispatches. It fails only when settings cannot be read.
	Announce(ctx context.Context, license *entity.License, event entity.NotificationEventType) error

	// SendTestMail sends a test message to "to" using the stored SMTP settings.
	SendTestMail(ctx context.Context, to string) error
}
