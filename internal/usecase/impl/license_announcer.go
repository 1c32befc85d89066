package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"
)

// announceTimeoutFactor covers the settings read plus both notification channels.
const announceTimeoutFactor = 3

// licenseAnnouncer triggers license notifications off the request path.
// Events go through the publisher when one is configured, otherwise they are
// dispatched in-process on a detached context.
type licenseAnnouncer struct {
	publisher      service.EventPublisher
	notificationUC usecase.NotificationUsecase
	timeout        time.Duration
	logger         *slog.Logger
	async          func(fn func())
}

func newLicenseAnnouncer(
	publisher service.EventPublisher,
	notificationUC usecase.NotificationUsecase,
	timeout time.Duration,
	logger *slog.Logger,
) *licenseAnnouncer {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	return &licenseAnnouncer{
		publisher:      publisher,
		notificationUC: notificationUC,
		timeout:        timeout * announceTimeoutFactor,
		logger:         logger,
		async:          func(fn func()) { go fn() },
	}
}

func (a *licenseAnnouncer) announce(ctx context.Context, license *entity.License, event entity.NotificationEventType) {
	snapshot := *license
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	detached := context.WithoutCancel(ctx)

	a.async(func() {
		ctx, cancel := context.WithTimeout(detached, a.timeout)
		defer cancel()

		if a.publisher != nil {
			err := a.publisher.PublishLicenseEvent(ctx, &service.LicenseEvent{
				RequestID:  requestID,
				Type:       event,
				License:    snapshot,
				OccurredAt: time.Now().UTC(),
			})
			if err == nil {
				return
			}

			logger.Warn("Failed to publish license event, dispatching in process",
				slog.Int64("license_id", snapshot.ID),
				slog.String("event", event.String()),
				slog.Any("error", err),
			)
		}

		if err := a.notificationUC.Announce(ctx, &snapshot, event); err != nil {
			logger.Warn("License notification skipped",
				slog.Int64("license_id", snapshot.ID),
				slog.String("event", event.String()),
				slog.Any("error", err),
			)
		}
	})
}
