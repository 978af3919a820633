package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mapspot/admin-api/database"
	"github.com/mapspot/admin-api/model"
	"github.com/mapspot/admin-api/services"
	"github.com/mapspot/admin-api/utils/response"
	"github.com/mapspot/admin-api/utils/validation"
)

// Handler handles user-related requests
type Handler struct {
	service   *services.UserService
	validator *validation.Validator
}

// NewHandler creates a new user handler
func NewHandler(service *services.UserService) *Handler {
	return &Handler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Email string  `json:"email" validate:"required,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=ADMIN EDITOR VIEWER"`
}

// List handles GET /api/users
func (h *Handler) List(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}
	return response.OK(c, users)
}

// Create handles POST /api/users
func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	role := model.RoleViewer
	if req.Role != nil {
		role = *req.Role
	}

	user := model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}

	if err := h.service.Create(&user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return response.Conflict(c, "User with this email already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, user)
}
