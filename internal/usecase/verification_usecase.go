package usecase

import (
	"context"
	"time"
)

// Verification messages returned to clients.
const (
	MessageInvalidKey = "Invalid license key"
	MessageRevoked    = "License has been revoked"
	MessageExpired    = "License has expired"
	MessageActive     = "License is active"
)

// VerifiedLicense is the public view of a valid license.
type VerifiedLicense struct {
	ClientName string     `json:"clientName"`
	ExpiresAt  *time.Time `json:"expiresAt"`
}

// VerificationResult is the outcome of checking a key. Negative outcomes are results, not errors.
type VerificationResult struct {
	Valid   bool             `json:"valid"`
	Message string           `json:"message"`
	License *VerifiedLicense `json:"license,omitempty"`
}

// VerificationUsecase decides the validity of a presented key
type VerificationUsecase interface {
	// Verify checks key. It only fails on an empty key or storage errors.
	Verify(ctx context.Context, key string) (*VerificationResult, error)
}
