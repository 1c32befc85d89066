package model

import (
	"time"
)

// LicenseModel is the GORM-specific struct for the 'licenses' table.
type LicenseModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Key           string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_licenses_key"`
	ClientName    string  `gorm:"type:varchar(255);not null"`
	Email         *string `gorm:"type:varchar(255)"`
	DiscordID     *string `gorm:"type:varchar(64)"`
	Description   *string `gorm:"type:text"`
	IsActive      bool    `gorm:"not null;default:true"`
	ExpiresAt     *time.Time
	CreatedAt     time.Time `gorm:"not null;index:idx_licenses_created_at,sort:desc"`
	LastCheckedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (LicenseModel) TableName() string {
	return "licenses"
}
