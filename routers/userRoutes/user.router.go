package userRoutes

import (
	userController "coursehub/controllers/userControllers"
	"coursehub/middleware"
	"coursehub/validators"
	userValidator "coursehub/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(router fiber.Router) {
	userGroup := router.Group("/users")

	userGroup.Get("", userController.GetUsers)
	userGroup.Post("", userValidator.SignIn(), userController.SignIn)
	userGroup.Get("/:email", validators.RequireParam("email", "Email"), userController.GetUser)

	router.Get("/me", middleware.JWTMiddleware, userController.GetProfile)
	router.Get("/stats", userController.GetPlatformStats)
}
