package reviewValidator

import (
	"coursehub/middleware"
	"coursehub/services"
	"coursehub/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ReviewRequest struct {
	CourseID string `json:"courseId" validate:"required,max=36"`
	UserName string `json:"userName" validate:"required,max=255"`
	Rating   *int   `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"max=2000"`
}

func (r *ReviewRequest) Input() services.ReviewInput {
	return services.ReviewInput{
		CourseID: r.CourseID,
		UserName: r.UserName,
		Rating:   *r.Rating,
		Comment:  r.Comment,
	}
}

func AddReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return validators.BodyError(c, err)
		}
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.UserName = strings.TrimSpace(reqData.UserName)
		reqData.Comment = strings.TrimSpace(reqData.Comment)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
