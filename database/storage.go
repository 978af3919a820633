package database

import (
	"errors"

	"github.com/mapspot/admin-api/model"
)

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access for callers that need the raw handle (seeder, cron)
	GetDB() interface{}

	// Locations
	ListLocations() ([]model.Location, error)
	GetLocation(id uint) (*model.Location, error)
	CreateLocation(loc *model.Location) error
	UpdateLocation(id uint, fields map[string]interface{}) (*model.Location, error)
	DeleteLocation(id uint) error

	// Users
	ListUsers() ([]model.User, error)
	CreateUser(user *model.User) error

	// Singleton app config
	GetAppConfig() (*model.AppConfig, error)
	UpsertAppConfig(googleMapsAPIKey string) error
}
