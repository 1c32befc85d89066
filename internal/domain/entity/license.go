// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

const maskedKeyPrefixLength = 8

// LicenseStatus is the derived state of a license at a point in time.
type LicenseStatus string

const (
	LicenseStatusActive  LicenseStatus = "active"
	LicenseStatusRevoked LicenseStatus = "revoked"
	LicenseStatusExpired LicenseStatus = "expired"
)

// License represents one granted right-to-use, identified by an opaque key.
type License struct {
	ID            int64      `json:"id"`            // Auto-incrementing identifier.
	Key           string     `json:"key"`           // Opaque random key presented by clients. Immutable.
	ClientName    string     `json:"clientName"`    // Display label of the licensee.
	Email         *string    `json:"email"`         // Optional contact address for notifications.
	DiscordID     *string    `json:"discordId"`     // Optional chat account of the licensee.
	Description   *string    `json:"description"`   // Optional free-form note.
	IsActive      bool       `json:"isActive"`      // False means administratively revoked.
	ExpiresAt     *time.Time `json:"expiresAt"`     // Nil means a lifetime license.
	CreatedAt     time.Time  `json:"createdAt"`     // Set once at creation.
	LastCheckedAt *time.Time `json:"lastCheckedAt"` // Last successful verification. Observational only.
}

// IsLifetime reports whether the license never expires.
func (l *License) IsLifetime() bool {
	return l.ExpiresAt == nil
}

// IsExpiredAt reports whether the expiration time has been reached at t.
func (l *License) IsExpiredAt(t time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(t)
}

// IsValidAt reports whether the license grants access at t.
// It is a pure function of IsActive, ExpiresAt and t.
func (l *License) IsValidAt(t time.Time) bool {
	return l.IsActive && !l.IsExpiredAt(t)
}

// StatusAt classifies the license at t. Revocation wins over expiration.
func (l *License) StatusAt(t time.Time) LicenseStatus {
	switch {
	case !l.IsActive:
		return LicenseStatusRevoked
	case l.IsExpiredAt(t):
		return LicenseStatusExpired
	default:
		return LicenseStatusActive
	}
}

// HasEmail reports whether the license has a non-empty contact address.
func (l *License) HasEmail() bool {
	return l.Email != nil && *l.Email != ""
}

// MaskedKey returns the key shortened for logs and chat announcements.
func (l *License) MaskedKey() string {
	if len(l.Key) <= maskedKeyPrefixLength {
		return l.Key
	}

	return l.Key[:maskedKeyPrefixLength] + "..."
}

// LicensePatch is a partial update of a license. Nil fields are left unchanged.
// The identifier, key and creation time can never be patched.
type LicensePatch struct {
	ClientName  *string
	Email       *string
	DiscordID   *string
	Description *string
	IsActive    *bool
	ExpiresAt   *time.Time

	// ClearExpiresAt turns the license into a lifetime license. It takes precedence over ExpiresAt.
	ClearExpiresAt bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *LicensePatch) IsEmpty() bool {
	return p.ClientName == nil &&
		p.Email == nil &&
		p.DiscordID == nil &&
		p.Description == nil &&
		p.IsActive == nil &&
		p.ExpiresAt == nil &&
		!p.ClearExpiresAt
}

// LicenseStats summarises the license table. Every license lands in exactly one bucket.
type LicenseStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Revoked int `json:"revoked"`
	Expired int `json:"expired"`
}

// TallyLicenses computes LicenseStats at t.
func TallyLicenses(licenses []*License, t time.Time) LicenseStats {
	stats := LicenseStats{Total: len(licenses)}
	for _, l := range licenses {
		switch l.StatusAt(t) {
		case LicenseStatusActive:
			stats.Active++
		case LicenseStatusRevoked:
			stats.Revoked++
		case LicenseStatusExpired:
			stats.Expired++
		}
	}

	return stats
}
