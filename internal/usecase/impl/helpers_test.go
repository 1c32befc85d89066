package impl

import (
	"io"
	"log/slog"
	"time"

	"keygate/internal/domain/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestLicense(id int64, key string) *entity.License {
	return &entity.License{
		ID:         id,
		Key:        key,
		ClientName: "Acme Corp",
		IsActive:   true,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
