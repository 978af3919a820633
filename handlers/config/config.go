package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mapspot/admin-api/database"
	"github.com/mapspot/admin-api/services"
	"github.com/mapspot/admin-api/utils/response"
)

// Handler serves the read-only singleton app-config endpoint
type Handler struct {
	service *services.ConfigService
}

// NewHandler creates a new config handler
func NewHandler(service *services.ConfigService) *Handler {
	return &Handler{service: service}
}

// GetGoogleMapsKey handles GET /api/config/google-maps-key. A missing
// singleton row is a fatal-config signal, not a client error, hence 500.
func (h *Handler) GetGoogleMapsKey(c *fiber.Ctx) error {
	cfg, err := h.service.Get()
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.InternalServerError(c, "AppConfig not initialized")
		}
		return response.InternalServerError(c, "Failed to fetch app config")
	}
	return response.OK(c, fiber.Map{"apiKey": cfg.GoogleMapsAPIKey})
}
