package server

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/logger"
	"coursehub/middleware"
	"coursehub/routers/courseRoutes"
	"coursehub/routers/healthRoutes"
	"coursehub/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New assembles the HTTP application from the current AppConfig.
func New() *fiber.App {
	cfg := config.AppConfig

	app := fiber.New(fiber.Config{
		AppName:               "coursehub",
		ErrorHandler:          middleware.ErrorHandler,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${ip} ${method} ${path} ${status} ${latency}\n",
		Output: logger.Writer(),
	}))

	healthRoutes.SetupHealthRoutes(app)

	api := app.Group(cfg.APIPrefix, middleware.RequireStore(func() *database.Monitor {
		return database.Database.Monitor
	}))
	courseRoutes.SetupCourseRoutes(api)
	courseRoutes.SetupEnrollmentRoutes(api)
	userRoutes.SetupUserRoutes(api)

	return app
}
