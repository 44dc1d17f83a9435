package courseController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/services"
	reviewValidator "coursehub/validators/review"

	"github.com/gofiber/fiber/v2"
)

func reviewService() *services.ReviewService {
	return services.NewReviewService(database.Database.Db)
}

// SubmitReview appends a review for a course
func SubmitReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*reviewValidator.ReviewRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	review, err := reviewService().AddReview(ctx, reqData.Input())
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.MessageResponse(c, fiber.StatusOK, "Review added successfully", fiber.Map{
		"insertedId": review.ID,
	})
}

// GetCourseReviews returns every review of a course
func GetCourseReviews(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	reviews, err := reviewService().ListReviews(ctx, c.Params("courseId"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, reviews)
}
