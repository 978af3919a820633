package response

import (
	"github.com/gofiber/fiber/v2"
)

// The frontend consumes these shapes directly, so the helpers emit the
// bare wire format rather than a success/data envelope: arrays and
// records as-is, `{"errors": {...}}` for field-level validation
// failures, `{"error": "..."}` for everything else.

// OK returns a 200 response with the payload as-is
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created returns a 201 response with the created record
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Deleted returns the 200 deletion confirmation echoing the id
func Deleted(c *fiber.Ctx, id uint) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "id": id})
}

// ValidationFailed returns a 400 with every violation keyed by field path
func ValidationFailed(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
}

// BadRequest returns a 400 with a single error message
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// NotFound returns a 404 for an absent record id
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

// Conflict returns a 409 for uniqueness violations
func Conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

// InternalServerError returns a 500 for store faults and misconfiguration
func InternalServerError(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}
