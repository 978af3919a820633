package model

import (
	"time"
)

// AppConfigID is the fixed identity of the singleton config row.
const AppConfigID uint = 1

// AppConfig is a singleton row (id=1) holding install-wide settings.
// The upsert-on-id=1 path in the store is the only writer, which keeps
// the table at exactly one record.
type AppConfig struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	GoogleMapsAPIKey string    `gorm:"type:text;not null" json:"googleMapsApiKey"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TableName specifies the table name for AppConfig
func (AppConfig) TableName() string {
	return "app_config"
}
