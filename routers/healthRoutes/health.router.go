package healthRoutes

import (
	healthController "coursehub/controllers/health"

	"github.com/gofiber/fiber/v2"
)

// SetupHealthRoutes mounts the liveness routes. They answer even when the store is down.
func SetupHealthRoutes(router fiber.Router) {
	router.Get("/", healthController.Root)
	router.Get("/health", healthController.Health)
}
