package router

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/mapspot/admin-api/database"
	"github.com/mapspot/admin-api/handlers"
	config_handlers "github.com/mapspot/admin-api/handlers/config"
	location_handlers "github.com/mapspot/admin-api/handlers/location"
	user_handlers "github.com/mapspot/admin-api/handlers/user"
	"github.com/mapspot/admin-api/services"
	"github.com/mapspot/admin-api/utils/cache"
	"github.com/mapspot/admin-api/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Optional Redis cache for the polling clients. The API works
	// without it, writes just always hit the store.
	var redisCache *cache.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Location list caching will be disabled.", err)
			redisCache = nil
		}
	}

	locationService := services.NewLocationService(store, redisCache)
	userService := services.NewUserService(store)
	configService := services.NewConfigService(store)

	locationHandler := location_handlers.NewHandler(locationService)
	userHandler := user_handlers.NewHandler(userService)
	configHandler := config_handlers.NewHandler(configService)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: allowedOrigins,
	})

	// Health check endpoint (public)
	app.Get("/health", handlers.HandleCheckHealth)

	api := app.Group("/api")

	// Read-only singleton config
	configGroup := api.Group("/config")
	configGroup.Get("/google-maps-key", configHandler.GetGoogleMapsKey)

	// Locations CRUD
	locations := api.Group("/locations")
	locations.Get("/", locationHandler.List)
	locations.Get("/revision", locationHandler.Revision)
	locations.Post("/", locationHandler.Create)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Users (list + create only, no update/delete surface)
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
}
