// Package discord serves the license slash commands of the chat bot.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"keygate/config"
	"keygate/internal/delivery"
	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	"keygate/internal/usecase"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/fx"
)

const commandTimeout = 10 * time.Second

// ChatSession is the bot connection the commands are served on.
type ChatSession interface {
	AddHandler(handler any)
	Current() (*discordgo.Session, *entity.Settings)
	SendLog(ctx context.Context, content string) error
}

var minDays = float64(0)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "verify",
		Description: "Check a license key",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "key",
				Description: "License key",
				Required:    true,
			},
		},
	},
	{
		Name:        "generate",
		Description: "Issue a new license (admin only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Client name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "email",
				Description: "Client email, receives the key",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "discord_id",
				Description: "Client Discord user id",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "days",
				Description: "Days until expiry, 0 for lifetime",
				MinValue:    &minDays,
			},
		},
	},
}

// BotParams holds dependencies for Bot, injected by Fx.
type BotParams struct {
	fx.In

	Lc             fx.Lifecycle
	Config         *config.Config
	Logger         *slog.Logger
	Session        ChatSession
	VerificationUC usecase.VerificationUsecase
	LicenseUC      usecase.LicenseUsecase
}

// Bot answers /verify and /generate interactions.
type Bot struct {
	session        ChatSession
	verificationUC usecase.VerificationUsecase
	licenseUC      usecase.LicenseUsecase
	guildID        string
	logger         *slog.Logger
	stopped        chan struct{}
}

// NewBot registers the command handlers on the session. They take effect on the
// next connection, which the application opens on start from the stored settings.
func NewBot(params BotParams) (delivery.Delivery, error) {
	b := &Bot{
		session:        params.Session,
		verificationUC: params.VerificationUC,
		licenseUC:      params.LicenseUC,
		logger:         params.Logger,
		stopped:        make(chan struct{}),
	}
	if params.Config.Discord != nil {
		b.guildID = params.Config.Discord.GuildID
	}

	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteraction)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(b.stopped)

			return nil
		},
	})

	return b, nil
}

// Serve blocks until the application stops. Gateway events arrive on discordgo's goroutines.
func (b *Bot) Serve(context.Context) error {
	b.logger.Info("Discord command bot ready")
	<-b.stopped

	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if _, err := s.ApplicationCommandBulkOverwrite(r.User.ID, b.guildID, commands); err != nil {
		b.logger.Error("Failed to register slash commands", slog.Any("error", err))

		return
	}

	b.logger.Info("Slash commands registered",
		slog.String("bot", r.User.Username),
		slog.String("guild_id", b.guildID),
	)
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	ctx = deliverycontext.WithRequestScope(ctx, b.logger, i.ID)

	data := i.ApplicationCommandData()
	user := interactionUser(i)
	options := optionMap(data.Options)

	var reply string
	switch data.Name {
	case "verify":
		reply = b.verify(ctx, user, stringOption(options, "key"))
	case "generate":
		_, settings := b.session.Current()
		var adminID string
		if settings != nil {
			adminID = entity.Value(settings.DiscordAdminID)
		}
		reply = b.generate(ctx, user, adminID, options)
	default:
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: reply,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("Failed to answer interaction",
			slog.String("command", data.Name),
			slog.Any("error", err),
		)
	}
}

func (b *Bot) verify(ctx context.Context, user *discordgo.User, key string) string {
	logger := deliverycontext.GetLoggerOrDefault(ctx, b.logger)

	result, err := b.verificationUC.Verify(ctx, key)
	if err != nil {
		logger.Error("Discord verification failed", slog.Any("error", err))

		return "Verification is unavailable, please try again later."
	}

	masked := (&entity.License{Key: key}).MaskedKey()
	if err := b.session.SendLog(ctx, fmt.Sprintf("User %s verified license: %s", userTag(user), masked)); err != nil {
		logger.Warn("Failed to log verification to discord", slog.Any("error", err))
	}

	switch {
	case result.Valid && result.License != nil:
		return fmt.Sprintf("License for **%s** is **ACTIVE**", result.License.ClientName)
	case result.Message == usecase.MessageInvalidKey:
		return "Invalid license key."
	default:
		return fmt.Sprintf("License is **INACTIVE/EXPIRED**: %s", result.Message)
	}
}

func (b *Bot) generate(ctx context.Context, user *discordgo.User, adminID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) string {
	if adminID == "" || user == nil || user.ID != adminID {
		return "You are not authorized to generate licenses."
	}

	input := &usecase.IssueLicenseInput{
		ClientName:    stringOption(options, "name"),
		Email:         optionalString(options, "email"),
		DiscordID:     optionalString(options, "discord_id"),
		ExpiresInDays: int(intOption(options, "days")),
	}

	license, err := b.licenseUC.Issue(ctx, input)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, b.logger).Error("Discord license generation failed", slog.Any("error", err))

		return "Failed to generate license."
	}

	return fmt.Sprintf("License generated for %s: `%s`", license.ClientName, license.Key)
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}

	return i.User
}

func userTag(user *discordgo.User) string {
	if user == nil {
		return "unknown"
	}
	if user.Discriminator == "" || user.Discriminator == "0" {
		return user.Username
	}

	return user.Username + "#" + user.Discriminator
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}

	return m
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}

	return opt.StringValue()
}

func optionalString(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) *string {
	v := stringOption(options, name)
	if v == "" {
		return nil
	}

	return &v
}

func intOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	opt, ok := options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}

	return opt.IntValue()
}
