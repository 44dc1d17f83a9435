package userController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/services"
	userValidator "coursehub/validators/user"

	"github.com/gofiber/fiber/v2"
)

const userNotFound = "User not found"

func userService() *services.UserService {
	return services.NewUserService(database.Database.Db)
}

// SignIn returns the stored user for the email, creating it on first sign-in,
// together with a token identifying the email.
func SignIn(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.SignInRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	user, _, err := userService().GetOrCreateUser(ctx, reqData.Input())
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, userNotFound)
	}

	token, err := middleware.GenerateJWT(user.Email, user.Name, user.Role)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, userNotFound)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"email":     user.Email,
		"name":      user.Name,
		"photoURL":  user.PhotoURL,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
		"token":     token,
	})
}

func GetUser(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	user, err := userService().GetUser(ctx, c.Params("email"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, userNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

func GetUsers(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	users, err := userService().ListUsers(ctx)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, userNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, users)
}

// GetProfile resolves the user behind the bearer token
func GetProfile(c *fiber.Ctx) error {
	email, ok := c.Locals("userEmail").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	user, err := userService().GetUser(ctx, email)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, userNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

func GetPlatformStats(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	stats, err := userService().PlatformStats(ctx)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, userNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, stats)
}
