package courseController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/services"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

const courseNotFound = "Course not found"

func courseService() *services.CourseService {
	return services.NewCourseService(database.Database.Db)
}

// GetAllCourses lists the catalog with optional search, category and sort
func GetAllCourses(c *fiber.Ctx) error {
	filter := services.CourseFilter{}
	if q, ok := c.Locals("validatedList").(*validators.ListQuery); ok {
		filter = services.CourseFilter{Search: q.Search, Category: q.Category, SortBy: q.SortBy}
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	courses, err := courseService().ListCourses(ctx, filter)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, courses)
}

func GetCourseDetails(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	course, err := courseService().GetCourse(ctx, c.Params("id"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, course)
}

func GetFeaturedCourses(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	courses, err := courseService().ListFeatured(ctx)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, courses)
}

func GetInstructorCourses(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	courses, err := courseService().ListByInstructor(ctx, c.Params("email"))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, courses)
}

func GetCategories(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	categories, err := courseService().ListCategories(ctx)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, categories)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	course := reqData.Course()
	if err := courseService().CreateCourse(ctx, course); err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.MessageResponse(c, fiber.StatusOK, "Course added successfully", fiber.Map{
		"courseId": course.ID,
	})
}

func UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	if err := courseService().UpdateCourse(ctx, c.Params("id"), reqData.Fields()); err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.MessageResponse(c, fiber.StatusOK, "Course updated successfully", nil)
}

func DeleteCourse(c *fiber.Ctx) error {
	ctx, cancel := middleware.QueryContext(c)
	defer cancel()

	if err := courseService().DeleteCourse(ctx, c.Params("id")); err != nil {
		return middleware.ServiceErrorResponse(c, err, courseNotFound)
	}
	return middleware.MessageResponse(c, fiber.StatusOK, "Course deleted successfully", nil)
}
