package healthController

import (
	"coursehub/database"
	"coursehub/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
)

func Root(c *fiber.Ctx) error {
	return middleware.MessageResponse(c, fiber.StatusOK, "Online Learning Platform API Server", nil)
}

// Health never fails; it reports whether the last store check succeeded.
func Health(c *fiber.Ctx) error {
	status := "Disconnected"
	if database.Database.Monitor.Connected() {
		status = "Connected"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"status":    "OK",
		"message":   "Server is running",
		"database":  status,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
