package courseRoutes

import (
	controllers "shehub/controllers/course"
	"shehub/middleware"
	validators "shehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment and progress
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateProgress(), controllers.UpdateProgress)

	// User enrollments and certificates
	userGroup := app.Group("/user")
	userGroup.Get("/my-courses", middleware.JWTMiddleware, controllers.GetMyCourses)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetMyCertificates)
}
