package usecase

import (
	"context"
	"time"
)

// AdminSession is a signed admin session.
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

// AdminUsecase gates management operations behind the shared admin password
type AdminUsecase interface {
	// Login exchanges the admin password for a session.
	Login(ctx context.Context, password string) (*AdminSession, error)

	// Authenticate checks a session token.
	Authenticate(ctx context.Context, token string) error
}
