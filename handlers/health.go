package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func HandleCheckHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
