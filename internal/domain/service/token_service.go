package service

import (
	"time"
)

// SessionClaims describes a validated admin session token.
type SessionClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating admin session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueSession creates a signed session token for subject.
	IssueSession(subject string) (token string, expiresAt time.Time, err error)

	// ValidateSession checks the signature and expiry of a session token.
	ValidateSession(token string) (*SessionClaims, error)
}
