package middleware

import (
	"coursehub/database"

	"github.com/gofiber/fiber/v2"
)

// RequireStore rejects requests while the store monitor reports the database unreachable.
func RequireStore(monitor func() *database.Monitor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m := monitor(); m == nil || !m.Connected() {
			return ErrorResponse(c, fiber.StatusServiceUnavailable, "Database not connected")
		}
		return c.Next()
	}
}
