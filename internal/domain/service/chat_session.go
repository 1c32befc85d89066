package service

import (
	"context"

	"keygate/internal/domain/entity"
)

// ChatSession is the process-scoped chat bot connection.
// It is rebuilt from the settings row whenever settings change.
type ChatSession interface {
	// Reload closes the current connection and opens a new one from settings.
	// A settings row without a bot token leaves the session closed.
	Reload(ctx context.Context, settings *entity.Settings) error

	// Close disconnects the bot.
	Close() error
}
