package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
	"keygate/internal/errors"

	"github.com/bwmarrin/discordgo"
)

// Embed colors per event.
const (
	colorGenerated = 0x2ecc71
	colorRevoked   = 0xe74c3c
	colorActivated = 0x3498db
)

type chatNotifier struct {
	session *Session
	logger  *slog.Logger
}

// NewChatNotifier creates a Notifier posting license events to the logs channel.
func NewChatNotifier(session *Session, logger *slog.Logger) service.Notifier {
	return &chatNotifier{session: session, logger: logger}
}

// Notify posts an embed to the logs channel. The key is masked. Without a connection
// or logs channel the notification is skipped.
func (n *chatNotifier) Notify(ctx context.Context, notification *service.Notification) error {
	conn, current := n.session.Current()
	if conn == nil {
		return nil
	}

	channelID := logsChannel(notification.Settings)
	if channelID == "" {
		channelID = logsChannel(current)
	}
	if channelID == "" {
		return nil
	}

	embed := licenseEmbed(notification, time.Now())
	if _, err := conn.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return errors.Wrap(err, "failed to post license event")
	}

	n.logger.Debug("Discord notification sent", slog.String("event", notification.Event.String()))

	return nil
}

func licenseEmbed(notification *service.Notification, now time.Time) *discordgo.MessageEmbed {
	license := notification.License

	expiry := "Never"
	if license.ExpiresAt != nil {
		expiry = license.ExpiresAt.UTC().Format(time.DateOnly)
	}

	return &discordgo.MessageEmbed{
		Title: notification.Subject,
		Color: eventColor(notification.Event),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Client", Value: license.ClientName, Inline: true},
			{Name: "Key", Value: fmt.Sprintf("`%s`", license.MaskedKey()), Inline: true},
			{Name: "Expires", Value: expiry, Inline: true},
			{Name: "Status", Value: string(license.StatusAt(now)), Inline: true},
		},
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

func eventColor(event entity.NotificationEventType) int {
	switch event {
	case entity.EventRevoked:
		return colorRevoked
	case entity.EventActivated:
		return colorActivated
	default:
		return colorGenerated
	}
}
