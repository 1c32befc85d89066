// Package notification delivers license notifications over email and chat.
package notification

import (
	"context"
	"log/slog"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
	"keygate/internal/errors"

	"github.com/wneessen/go-mail"
)

// smtpImplicitTLSPort is the submission port that expects TLS from the first byte.
const smtpImplicitTLSPort = 465

// ErrMissingSender is returned when neither a from address nor an SMTP user is configured.
var ErrMissingSender = errors.New("smtp sender address is not configured")

type smtpNotifier struct {
	logger *slog.Logger
	send   func(ctx context.Context, client *mail.Client, msg *mail.Msg) error
}

// NewSMTPNotifier creates an email Notifier. A client is built per message from the
// settings carried by the notification, so saved SMTP changes apply immediately.
func NewSMTPNotifier(logger *slog.Logger) service.Notifier {
	return &smtpNotifier{
		logger: logger,
		send: func(ctx context.Context, client *mail.Client, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}
}

// Notify sends notification.Body as a plain text email to notification.Recipient.
func (n *smtpNotifier) Notify(ctx context.Context, notification *service.Notification) error {
	settings := notification.Settings
	if !settings.MailConfigured() {
		return errors.New("smtp host is not configured")
	}

	msg, err := buildMessage(settings, notification)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(*settings.SMTPHost, clientOptions(settings)...)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	if err := n.send(ctx, client, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail via %s:%d", *settings.SMTPHost, settings.Port())
	}

	n.logger.Debug("Email sent",
		slog.String("subject", notification.Subject),
		slog.String("host", *settings.SMTPHost),
	)

	return nil
}

// sender prefers the configured from address and falls back to the SMTP user.
func sender(settings *entity.Settings) string {
	if from := entity.Value(settings.SMTPFrom); from != "" {
		return from
	}

	return entity.Value(settings.SMTPUser)
}

func buildMessage(settings *entity.Settings, notification *service.Notification) (*mail.Msg, error) {
	from := sender(settings)
	if from == "" {
		return nil, ErrMissingSender
	}
	if notification.Recipient == "" {
		return nil, errors.New("email recipient is empty")
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrapf(err, "invalid from address %q", from)
	}
	if err := msg.To(notification.Recipient); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient address %q", notification.Recipient)
	}
	msg.Subject(notification.Subject)
	msg.SetBodyString(mail.TypeTextPlain, notification.Body)

	return msg, nil
}

// clientOptions uses implicit TLS on port 465 and opportunistic STARTTLS elsewhere.
// Authentication is only enabled when a user is configured.
func clientOptions(settings *entity.Settings) []mail.Option {
	port := settings.Port()
	opts := []mail.Option{mail.WithPort(port)}

	if port == smtpImplicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if user := entity.Value(settings.SMTPUser); user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(entity.Value(settings.SMTPPassword)),
		)
	}

	return opts
}
