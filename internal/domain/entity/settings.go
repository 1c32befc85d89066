package entity

import "time"

// DefaultSMTPPort is used when the settings leave the port empty.
const DefaultSMTPPort = 587

// Settings is the singleton configuration row for notification channels.
type Settings struct {
	ID                     int64     `json:"id"`
	DiscordToken           *string   `json:"discordToken"`
	DiscordAdminID         *string   `json:"discordAdminId"`
	DiscordLogsChannelID   *string   `json:"discordLogsChannelId"`
	DiscordUpdateChannelID *string   `json:"discordUpdateChannelId"`
	SMTPHost               *string   `json:"smtpHost"`
	SMTPPort               *int      `json:"smtpPort"`
	SMTPUser               *string   `json:"smtpUser"`
	SMTPPassword           *string   `json:"smtpPassword"`
	SMTPFrom               *string   `json:"smtpFrom"`
	LicenseEmailTemplate   *string   `json:"licenseEmailTemplate"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// MailConfigured reports whether an outbound mail host is set.
func (s *Settings) MailConfigured() bool {
	return s != nil && s.SMTPHost != nil && *s.SMTPHost != ""
}

// ChatConfigured reports whether a bot token is set.
func (s *Settings) ChatConfigured() bool {
	return s != nil && s.DiscordToken != nil && *s.DiscordToken != ""
}

// Port returns the configured SMTP port or DefaultSMTPPort.
func (s *Settings) Port() int {
	if s == nil || s.SMTPPort == nil || *s.SMTPPort <= 0 {
		return DefaultSMTPPort
	}

	return *s.SMTPPort
}

// EmailTemplate returns the custom license email template, or "" when unset.
func (s *Settings) EmailTemplate() string {
	if s == nil || s.LicenseEmailTemplate == nil {
		return ""
	}

	return *s.LicenseEmailTemplate
}

// Value returns the string pointed to by p, or "" when p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
