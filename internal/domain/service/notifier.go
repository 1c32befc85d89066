package service

import (
	"context"

	"keygate/internal/domain/entity"
)

// Notification is a single outbound message about a license.
type Notification struct {
	Event     entity.NotificationEventType
	License   *entity.License
	Settings  *entity.Settings // Channel credentials supplied by the caller
	Recipient string           // Email address; unused by chat notifiers
	Subject   string
	Body      string
}

// Notifier delivers notifications over one channel (email, chat).
// Implementations must respect ctx cancellation.
type Notifier interface {
	Notify(ctx context.Context, notification *Notification) error
}
