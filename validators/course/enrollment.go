package courseValidator

import (
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services"
	"coursehub/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest carries the denormalized course details the client copies onto the enrollment.
// instructorName may arrive as a plain name or as the course's instructor object.
type EnrollRequest struct {
	UserEmail  string            `json:"userEmail" validate:"required,email"`
	CourseID   string            `json:"courseId" validate:"required,max=36"`
	CourseName string            `json:"courseName" validate:"max=255"`
	Instructor models.Instructor `json:"instructorName"`
	Duration   *int              `json:"duration" validate:"omitempty,gte=0"`
}

func (r *EnrollRequest) Input() services.EnrollInput {
	in := services.EnrollInput{
		UserEmail:      r.UserEmail,
		CourseID:       r.CourseID,
		CourseName:     r.CourseName,
		InstructorName: r.Instructor.Name,
	}
	if r.Duration != nil {
		in.Duration = *r.Duration
	}
	return in
}

type ProgressRequest struct {
	Progress *int `json:"progress" validate:"required,gte=0,lte=100"`
}

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return validators.BodyError(c, err)
		}
		reqData.UserEmail = strings.TrimSpace(reqData.UserEmail)
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.CourseName = strings.TrimSpace(reqData.CourseName)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// UpdateProgress rejects progress outside 0..100 before it reaches the store.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("id")) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Enrollment ID is required!")
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return validators.BodyError(c, err)
		}
		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("progress", *reqData.Progress)
		return c.Next()
	}
}
