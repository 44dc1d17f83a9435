package middleware

import (
	"context"
	"errors"

	"coursehub/config"
	"coursehub/database"
	"coursehub/logger"
	"coursehub/services"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// MessageResponse answers {message, ...extra}.
func MessageResponse(c *fiber.Ctx, statusCode int, message string, extra fiber.Map) error {
	body := fiber.Map{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(statusCode).JSON(body)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":  "Validation failed!",
		"fields": errors,
	})
}

// ServiceErrorResponse maps the service error taxonomy onto HTTP statuses.
func ServiceErrorResponse(c *fiber.Ctx, err error, notFoundMessage string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return ValidationErrorResponse(c, verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, notFoundMessage)
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled in this course")
	case errors.Is(err, services.ErrStoreUnavailable):
		logger.Error("store unavailable", "path", c.Path(), "error", err)
		database.Database.Monitor.MarkDown()
		return ErrorResponse(c, fiber.StatusServiceUnavailable, "Database not connected")
	default:
		logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong!")
	}
}

// QueryContext bounds store calls made on behalf of the request.
func QueryContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	timeout := config.AppConfig.DBQueryTimeout
	if timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// ErrorHandler keeps framework errors (unknown route, bad method) in the JSON error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code == fiber.StatusNotFound {
		return ErrorResponse(c, code, "Route not found")
	}
	if code >= fiber.StatusInternalServerError {
		logger.Error("unhandled error", "path", c.Path(), "error", err)
		return ErrorResponse(c, code, "Something went wrong!")
	}
	return ErrorResponse(c, code, err.Error())
}
