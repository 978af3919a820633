package database

import (
	"github.com/mapspot/admin-api/model"
	"gorm.io/gorm/clause"
)

// GetAppConfig returns the singleton config row, or ErrNotFound if the
// install was never seeded.
func (s *GORMStore) GetAppConfig() (*model.AppConfig, error) {
	var cfg model.AppConfig
	if err := s.db.First(&cfg, model.AppConfigID).Error; err != nil {
		return nil, translateError(err)
	}
	return &cfg, nil
}

// UpsertAppConfig creates or updates the singleton row at id=1. The
// conflict target on the primary key is what keeps the table at exactly
// one record.
func (s *GORMStore) UpsertAppConfig(googleMapsAPIKey string) error {
	cfg := model.AppConfig{
		ID:               model.AppConfigID,
		GoogleMapsAPIKey: googleMapsAPIKey,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"google_maps_api_key", "updated_at"}),
	}).Create(&cfg).Error

	return translateError(err)
}
