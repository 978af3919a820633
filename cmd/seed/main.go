package main

import (
	"log"

	"github.com/mapspot/admin-api/config"
	"github.com/mapspot/admin-api/database"
	"gorm.io/gorm"
)

// Standalone seeder: creates tables, upserts the singleton config row
// and loads the sample locations/users.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	if err := database.NewSeeder(db).SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
