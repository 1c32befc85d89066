// Package discord holds the process-scoped Discord bot connection and the chat notifier built on it.
package discord

import (
	"context"
	"log/slog"
	"sync"

	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
	"keygate/internal/errors"

	"github.com/bwmarrin/discordgo"
)

// Session is the bot gateway connection. It is rebuilt from the settings row on every Reload.
type Session struct {
	mu       sync.RWMutex
	conn     *discordgo.Session
	settings *entity.Settings
	handlers []any
	logger   *slog.Logger

	open  func(conn *discordgo.Session) error
	close func(conn *discordgo.Session) error
}

var _ service.ChatSession = (*Session)(nil)

// NewSession returns a closed session. Call Reload to connect.
func NewSession(logger *slog.Logger) *Session {
	return &Session{
		logger: logger,
		open:   func(conn *discordgo.Session) error { return conn.Open() },
		close:  func(conn *discordgo.Session) error { return conn.Close() },
	}
}

// AddHandler registers a discordgo event handler on the current and every future connection.
func (s *Session) AddHandler(handler any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers = append(s.handlers, handler)
	if s.conn != nil {
		s.conn.AddHandler(handler)
	}
}

// Reload closes the current connection and opens a new one when settings carry a bot token.
func (s *Session) Reload(_ context.Context, settings *entity.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()
	if settings != nil {
		snapshot := *settings
		s.settings = &snapshot
	} else {
		s.settings = nil
	}

	if !settings.ChatConfigured() {
		s.logger.Info("Discord bot disabled, no token configured")

		return nil
	}

	conn, err := discordgo.New("Bot " + *settings.DiscordToken)
	if err != nil {
		return errors.Wrap(err, "failed to create discord session")
	}
	conn.Identify.Intents = discordgo.IntentsGuilds
	for _, handler := range s.handlers {
		conn.AddHandler(handler)
	}

	if err := s.open(conn); err != nil {
		return errors.Wrap(err, "failed to open discord gateway")
	}

	s.conn = conn
	s.logger.Info("Discord bot connected")

	return nil
}

// Close disconnects the bot. It is safe to call on a closed session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeLocked()

	return nil
}

func (s *Session) closeLocked() {
	if s.conn == nil {
		return
	}

	if err := s.close(s.conn); err != nil {
		s.logger.Warn("Failed to close discord session", slog.Any("error", err))
	}
	s.conn = nil
}

// Current returns the open connection and the settings it was built from.
// conn is nil when the bot is not connected.
func (s *Session) Current() (conn *discordgo.Session, settings *entity.Settings) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conn, s.settings
}

// SendLog posts content to the configured logs channel. It is a no-op when the bot
// is disconnected or no logs channel is set.
func (s *Session) SendLog(ctx context.Context, content string) error {
	conn, settings := s.Current()
	channelID := logsChannel(settings)
	if conn == nil || channelID == "" {
		return nil
	}

	if _, err := conn.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return errors.Wrap(err, "failed to send discord log message")
	}

	return nil
}

func logsChannel(settings *entity.Settings) string {
	if settings == nil {
		return ""
	}

	return entity.Value(settings.DiscordLogsChannelID)
}
