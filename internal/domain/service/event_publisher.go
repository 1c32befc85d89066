package service

import (
	"context"
	"time"

	"keygate/internal/domain/entity"
)

// LicenseEvent is published when a license changes, to be dispatched by the notifier worker.
// It carries a license snapshot so the worker does not read it back from storage.
type LicenseEvent struct {
	RequestID  string                       `json:"request_id,omitempty"` // For distributed tracing
	Type       entity.NotificationEventType `json:"type"`
	License    entity.License               `json:"license"`
	OccurredAt time.Time                    `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLicenseEvent publishes a license event for async processing
	PublishLicenseEvent(ctx context.Context, event *LicenseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
