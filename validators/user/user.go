package userValidator

import (
	"coursehub/middleware"
	"coursehub/services"
	"coursehub/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SignInRequest is what the identity provider hands the client after sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=255"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor admin"`
}

func (r *SignInRequest) Input() services.UserInput {
	return services.UserInput{
		Email:    r.Email,
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
		Role:     r.Role,
	}
}

func SignIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignInRequest)
		if err := c.BodyParser(reqData); err != nil {
			return validators.BodyError(c, err)
		}
		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Role = strings.ToLower(strings.TrimSpace(reqData.Role))

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}
