package courseController

import (
	"coursehub/database"
	"coursehub/logger"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services"
	"coursehub/utils"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

const enrollmentNotFound = "Enrollment not found"

func enrollmentService() *services.EnrollmentService {
	return services.NewEnrollmentService(database.Database.Db)
}

func EnrollInCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*validators.EnrollRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	enrollment, err := enrollmentService().Enroll(ctx, reqData.Input())
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}

	go notifyEnrollment(*enrollment)

	return middleware.MessageResponse(c, fiber.StatusOK, "Enrolled successfully", fiber.Map{
		"enrollmentId": enrollment.ID,
	})
}

func notifyEnrollment(e models.Enrollment) {
	if err := utils.SendEnrollmentEmail(e.UserEmail, e.CourseName); err != nil {
		logger.Warn("enrollment email failed", "email", e.UserEmail, "course", e.CourseID, "error", err)
	}
}

func GetEnrollments(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	enrollments, err := enrollmentService().ListEnrollments(ctx, c.Params("userEmail"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, enrollmentNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, enrollments)
}

func GetEnrollmentStats(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	stats, err := enrollmentService().Stats(ctx, c.Params("userEmail"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, enrollmentNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, stats)
}

func UpdateProgress(c *fiber.Ctx) error {
	progress, ok := c.Locals("progress").(int)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	if err := enrollmentService().UpdateProgress(ctx, c.Params("id"), progress); err != nil {
		return middleware.ServiceErrorResponse(c, err, enrollmentNotFound)
	}
	return middleware.MessageResponse(c, fiber.StatusOK, "Progress updated successfully", nil)
}

func CheckEnrollment(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	enrolled, err := enrollmentService().CheckEnrolled(ctx, c.Params("userEmail"), c.Params("courseId"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, enrollmentNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"enrolled": enrolled})
}
