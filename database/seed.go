package database

import (
	"fmt"
	"log"
	"os"

	"github.com/mapspot/admin-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedAppConfig(); err != nil {
		return fmt.Errorf("failed to seed app config: %w", err)
	}

	if err := s.SeedLocations(); err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAppConfig upserts the singleton config row (id=1) with the Google
// Maps API key from the environment. A placeholder is written when the
// variable is unset so the row always exists.
func (s *Seeder) SeedAppConfig() error {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		log.Println("GOOGLE_MAPS_API_KEY not set, seeding placeholder value")
		key = "REPLACE_ME_IN_.ENV"
	}

	cfg := model.AppConfig{
		ID:               model.AppConfigID,
		GoogleMapsAPIKey: key,
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"google_maps_api_key", "updated_at"}),
	}).Create(&cfg).Error; err != nil {
		return err
	}

	log.Println("Seeded app config row")
	return nil
}

// SeedLocations creates sample locations when the table is empty
func (s *Seeder) SeedLocations() error {
	var count int64
	if err := s.db.Model(&model.Location{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Locations already exist, skipping...")
		return nil
	}

	locations := []model.Location{
		{Name: "Sky Tower", Lat: -36.8485, Lng: 174.7622, Description: "Auckland icon"},
		{Name: "AUT City Campus", Lat: -36.8523, Lng: 174.7666, Description: "University campus"},
	}

	if err := s.db.Create(&locations).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d locations\n", len(locations))
	return nil
}

// SeedUsers creates sample users when the table is empty
func (s *Seeder) SeedUsers() error {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Users already exist, skipping...")
		return nil
	}

	users := []model.User{
		{Name: "Alice Admin", Email: "alice@example.com", Role: model.RoleAdmin},
		{Name: "Evan Editor", Email: "evan@example.com", Role: model.RoleEditor},
		{Name: "Vicky Viewer", Email: "vicky@example.com", Role: model.RoleViewer},
	}

	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d users\n", len(users))
	return nil
}
