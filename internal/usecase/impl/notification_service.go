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

const (
	channelEmail = "email"
	channelChat  = "chat"

	testMailSubject = "SMTP test"
	testMailBody    = "This is a test email from the license manager. Your SMTP settings work."

	defaultNotifyTimeout = 15 * time.Second
)

type notificationService struct {
	settingsRepo  repository.SettingsRepository
	emailNotifier service.Notifier
	chatNotifier  service.Notifier
	timeout       time.Duration
	logger        *slog.Logger
}

// NewNotificationService creates the license notification dispatcher.
// chatNotifier may be nil when no chat integration is wired.
func NewNotificationService(
	settingsRepo repository.SettingsRepository,
	emailNotifier service.Notifier,
	chatNotifier service.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	timeout := cfg.License.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	return &notificationService{
		settingsRepo:  settingsRepo,
		emailNotifier: emailNotifier,
		chatNotifier:  chatNotifier,
		timeout:       timeout,
		logger:        logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RenderLicenseTemplate substitutes {{type}}, {{key}} and {{clientName}} in template.
// Replacement is literal and single pass; other placeholders are kept as written.
// An empty template falls back to usecase.DefaultLicenseEmailTemplate.
func RenderLicenseTemplate(template string, license *entity.License, event entity.NotificationEventType) string {
	if template == "" {
		template = usecase.DefaultLicenseEmailTemplate
	}

	return strings.NewReplacer(
		"{{type}}", event.String(),
		"{{key}}", license.Key,
		"{{clientName}}", license.ClientName,
	).Replace(template)
}

// LicenseSubject returns the notification subject for event.
func LicenseSubject(event entity.NotificationEventType) string {
	return "License " + event.String()
}

// Dispatch sends the email and chat notifications for a license event.
func (s *notificationService) Dispatch(ctx context.Context, license *entity.License, event entity.NotificationEventType, settings *entity.Settings) {
	if license == nil {
		return
	}

	subject := LicenseSubject(event)

	if settings.MailConfigured() && license.HasEmail() {
		s.deliver(ctx, channelEmail, s.emailNotifier, &service.Notification{
			Event:     event,
			License:   license,
			Settings:  settings,
			Recipient: *license.Email,
			Subject:   subject,
			Body:      RenderLicenseTemplate(settings.EmailTemplate(), license, event),
		})
	}

	s.deliver(ctx, channelChat, s.chatNotifier, &service.Notification{
		Event:    event,
		License:  license,
		Settings: settings,
		Subject:  subject,
	})
}

func (s *notificationService) deliver(ctx context.Context, channel string, notifier service.Notifier, notification *service.Notification) {
	if notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := notifier.Notify(ctx, notification); err != nil {
		notifyErr := domainerrors.NewNotificationError(channel, err)
		s.log(ctx).Warn("License notification failed",
			slog.String("channel", channel),
			slog.String("event", notification.Event.String()),
			slog.Int64("license_id", notification.License.ID),
			slog.Any("error", notifyErr),
		)

		return
	}

	s.log(ctx).Debug("License notification sent",
		slog.String("channel", channel),
		slog.String("event", notification.Event.String()),
		slog.Int64("license_id", notification.License.ID),
	)
}

// Announce loads the stored settings and dispatches the event.
func (s *notificationService) Announce(ctx context.Context, license *entity.License, event entity.NotificationEventType) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrSettingsNotFound) {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	s.Dispatch(ctx, license, event, settings)

	return nil
}

// SendTestMail verifies the stored SMTP settings by mailing "to".
func (s *notificationService) SendTestMail(ctx context.Context, to string) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return errors.Wrap(domainerrors.ErrMailNotConfigured, "no settings saved")
		}

		return fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.MailConfigured() {
		return errors.Wrap(domainerrors.ErrMailNotConfigured, "smtp host is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err = s.emailNotifier.Notify(ctx, &service.Notification{
		Settings:  settings,
		Recipient: to,
		Subject:   testMailSubject,
		Body:      testMailBody,
	})
	if err != nil {
		return domainerrors.NewNotificationError(channelEmail, err)
	}

	s.log(ctx).Info("SMTP test mail sent", slog.String("to", to))

	return nil
}
