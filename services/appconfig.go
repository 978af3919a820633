package services

import (
	"github.com/mapspot/admin-api/database"
	"github.com/mapspot/admin-api/model"
)

// ConfigService exposes the singleton app-config row.
type ConfigService struct {
	store database.Storage
}

// NewConfigService creates a new config service
func NewConfigService(store database.Storage) *ConfigService {
	return &ConfigService{store: store}
}

// Get returns the singleton config row.
func (s *ConfigService) Get() (*model.AppConfig, error) {
	return s.store.GetAppConfig()
}

// Upsert writes the Google Maps API key into the singleton row.
func (s *ConfigService) Upsert(googleMapsAPIKey string) error {
	return s.store.UpsertAppConfig(googleMapsAPIKey)
}
