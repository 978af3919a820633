package location

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mapspot/admin-api/database"
	"github.com/mapspot/admin-api/model"
	"github.com/mapspot/admin-api/services"
	"github.com/mapspot/admin-api/utils/response"
	"github.com/mapspot/admin-api/utils/validation"
)

// Handler handles location-related requests
type Handler struct {
	service   *services.LocationService
	validator *validation.Validator
}

// NewHandler creates a new location handler
func NewHandler(service *services.LocationService) *Handler {
	return &Handler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateLocationRequest represents the request body for creating a location.
// Lat/Lng are pointers so a legitimate 0.0 survives the required check.
type CreateLocationRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=255"`
	Lat          *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng          *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Description  *string  `json:"description" validate:"omitempty"`
	LocationName *string  `json:"locationName" validate:"omitempty,max=255"`
	ScreenWidth  *int     `json:"screenWidth" validate:"omitempty,gt=0"`
	ScreenHeight *int     `json:"screenHeight" validate:"omitempty,gt=0"`
	ImageBase64  *string  `json:"imageBase64" validate:"required_with=ImageMime,omitempty,base64image,max=7000000"`
	ImageMime    *string  `json:"imageMime" validate:"required_with=ImageBase64,omitempty,oneof=image/jpeg image/png"`
	StartDate    *string  `json:"startDate" validate:"omitempty,rfc3339"`
	EndDate      *string  `json:"endDate" validate:"omitempty,rfc3339"`
	IsActive     *bool    `json:"isActive"`
}

// UpdateLocationRequest carries the same rules with every field optional.
// Only non-nil fields are validated and applied.
type UpdateLocationRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Lat          *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng          *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	Description  *string  `json:"description" validate:"omitempty"`
	LocationName *string  `json:"locationName" validate:"omitempty,max=255"`
	ScreenWidth  *int     `json:"screenWidth" validate:"omitempty,gt=0"`
	ScreenHeight *int     `json:"screenHeight" validate:"omitempty,gt=0"`
	ImageBase64  *string  `json:"imageBase64" validate:"required_with=ImageMime,omitempty,base64image,max=7000000"`
	ImageMime    *string  `json:"imageMime" validate:"required_with=ImageBase64,omitempty,oneof=image/jpeg image/png"`
	StartDate    *string  `json:"startDate" validate:"omitempty,rfc3339"`
	EndDate      *string  `json:"endDate" validate:"omitempty,rfc3339"`
	IsActive     *bool    `json:"isActive"`
}

// List handles GET /api/locations
func (h *Handler) List(c *fiber.Ctx) error {
	locations, err := h.service.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch locations")
	}
	return response.OK(c, locations)
}

// Revision handles GET /api/locations/revision
func (h *Handler) Revision(c *fiber.Ctx) error {
	return response.OK(c, fiber.Map{"revision": h.service.Revision(c.Context())})
}

// Create handles POST /api/locations
func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := h.validateRequest(req, req.ImageBase64)
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	location := model.Location{
		Name:     req.Name,
		Lat:      *req.Lat,
		Lng:      *req.Lng,
		IsActive: req.IsActive,
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.LocationName != nil {
		location.LocationName = *req.LocationName
	}
	location.ScreenWidth = req.ScreenWidth
	location.ScreenHeight = req.ScreenHeight
	if req.ImageBase64 != nil {
		location.ImageBase64 = *req.ImageBase64
		location.ImageMime = *req.ImageMime
	}
	if req.StartDate != nil {
		t, err := validation.ParseUTC(*req.StartDate)
		if err != nil {
			return response.ValidationFailed(c, map[string]string{"startDate": "startDate must be an ISO-8601 UTC timestamp"})
		}
		location.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := validation.ParseUTC(*req.EndDate)
		if err != nil {
			return response.ValidationFailed(c, map[string]string{"endDate": "endDate must be an ISO-8601 UTC timestamp"})
		}
		location.EndDate = &t
	}

	if err := h.service.Create(c.Context(), &location); err != nil {
		return response.InternalServerError(c, "Failed to create location")
	}

	return response.Created(c, location)
}

// Update handles PUT /api/locations/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid location id")
	}

	var req UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := h.validateRequest(req, req.ImageBase64)
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	fields, errs := updateFields(req)
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	location, err := h.service.Update(c.Context(), id, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Location not found")
		}
		return response.InternalServerError(c, "Failed to update location")
	}

	return response.OK(c, location)
}

// Delete handles DELETE /api/locations/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid location id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Location not found")
		}
		return response.InternalServerError(c, "Failed to delete location")
	}

	return response.Deleted(c, id)
}

// validateRequest runs struct validation plus the decoded-size ceiling
// the tag rules cannot express, enumerating all violations at once.
func (h *Handler) validateRequest(req interface{}, imageBase64 *string) map[string]string {
	errs := map[string]string{}
	if err := h.validator.ValidateStruct(req); err != nil {
		errs = validation.FormatValidationErrors(err)
	}
	if imageBase64 != nil && validation.DecodedSize(*imageBase64) > validation.MaxImageBytes {
		errs["imageBase64"] = "Image too large"
	}
	return errs
}

// updateFields maps the supplied request fields onto store columns.
func updateFields(req UpdateLocationRequest) (map[string]interface{}, map[string]string) {
	fields := map[string]interface{}{}
	errs := map[string]string{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Lat != nil {
		fields["lat"] = *req.Lat
	}
	if req.Lng != nil {
		fields["lng"] = *req.Lng
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.LocationName != nil {
		fields["location_name"] = *req.LocationName
	}
	if req.ScreenWidth != nil {
		fields["screen_width"] = *req.ScreenWidth
	}
	if req.ScreenHeight != nil {
		fields["screen_height"] = *req.ScreenHeight
	}
	if req.ImageBase64 != nil {
		fields["image_base64"] = *req.ImageBase64
		fields["image_mime"] = *req.ImageMime
	}
	if req.StartDate != nil {
		t, err := validation.ParseUTC(*req.StartDate)
		if err != nil {
			errs["startDate"] = "startDate must be an ISO-8601 UTC timestamp"
		} else {
			fields["start_date"] = t
		}
	}
	if req.EndDate != nil {
		t, err := validation.ParseUTC(*req.EndDate)
		if err != nil {
			errs["endDate"] = "endDate must be an ISO-8601 UTC timestamp"
		} else {
			fields["end_date"] = t
		}
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	return fields, errs
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
