package model

import "time"

// SettingsModel is the GORM-specific struct for the single-row 'settings' table.
type SettingsModel struct {
	ID                     int64   `gorm:"primaryKey;autoIncrement"`
	DiscordToken           *string `gorm:"type:text"`
	DiscordAdminID         *string `gorm:"type:varchar(64)"`
	DiscordLogsChannelID   *string `gorm:"type:varchar(64)"`
	DiscordUpdateChannelID *string `gorm:"type:varchar(64)"`
	SMTPHost               *string `gorm:"column:smtp_host;type:varchar(255)"`
	SMTPPort               *int    `gorm:"column:smtp_port"`
	SMTPUser               *string `gorm:"column:smtp_user;type:varchar(255)"`
	SMTPPassword           *string `gorm:"column:smtp_password;type:text"`
	SMTPFrom               *string `gorm:"column:smtp_from;type:varchar(255)"`
	LicenseEmailTemplate   *string `gorm:"type:text"`
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "settings"
}
