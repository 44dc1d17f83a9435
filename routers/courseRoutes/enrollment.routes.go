package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/validators"
	courseValidators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment, progress and enrollment lookup routes
func SetupEnrollmentRoutes(router fiber.Router) {
	enrollGroup := router.Group("/enroll")

	enrollGroup.Post("", courseValidators.EnrollCourse(), controllers.EnrollInCourse)
	enrollGroup.Get("/:userEmail", validators.RequireParam("userEmail", "User email"), controllers.GetEnrollments)
	enrollGroup.Get("/:userEmail/stats", validators.RequireParam("userEmail", "User email"), controllers.GetEnrollmentStats)
	enrollGroup.Put("/:id/progress", validators.RequireParam("id", "Enrollment ID"), courseValidators.UpdateProgress(), controllers.UpdateProgress)

	router.Get("/check-enrollment/:courseId/:userEmail",
		validators.RequireParam("courseId", "Course ID"),
		validators.RequireParam("userEmail", "User email"),
		controllers.CheckEnrollment,
	)
}
