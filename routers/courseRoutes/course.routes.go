package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/validators"
	courseValidators "coursehub/validators/course"
	reviewValidators "coursehub/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the catalog, category and review routes
func SetupCourseRoutes(router fiber.Router) {
	courseGroup := router.Group("/courses")

	// featured must be registered ahead of /:id
	courseGroup.Get("", courseValidators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/featured", controllers.GetFeaturedCourses)
	courseGroup.Get("/instructor/:email", validators.RequireParam("email", "Instructor email"), controllers.GetInstructorCourses)
	courseGroup.Get("/:id", validators.RequireParam("id", "Course ID"), controllers.GetCourseDetails)
	courseGroup.Post("", courseValidators.CreateCourse(), controllers.CreateCourse)

	router.Post("/add-course", courseValidators.CreateCourse(), controllers.CreateCourse)
	router.Put("/update-course/:id", validators.RequireParam("id", "Course ID"), courseValidators.UpdateCourse(), controllers.UpdateCourse)
	router.Delete("/delete-course/:id", validators.RequireParam("id", "Course ID"), controllers.DeleteCourse)
	router.Get("/categories", controllers.GetCategories)

	// Reviews
	router.Get("/reviews/:courseId", validators.RequireParam("courseId", "Course ID"), controllers.GetCourseReviews)
	router.Post("/reviews", reviewValidators.AddReview(), controllers.SubmitReview)
}
