package mentorRoutes

import (
	mentorController "shehub/controllers/mentor"
	"shehub/middleware"
	mentorValidator "shehub/validators/mentor"

	"github.com/gofiber/fiber/v2"
)

// SetupMentorRoutes sets up mentorship discovery and lifecycle routes
func SetupMentorRoutes(app *fiber.App) {
	mentorGroup := app.Group("/mentor")

	mentorGroup.Get("/list", middleware.JWTMiddleware, mentorController.GetAllMentors)
	mentorGroup.Get("/:id", middleware.JWTMiddleware, mentorValidator.MentorID(), mentorController.GetMentorDetails)
	mentorGroup.Post("/:id/request", middleware.JWTMiddleware, mentorValidator.RequestMentor(), mentorController.RequestMentorship)

	mentorshipGroup := app.Group("/mentorship")
	mentorshipGroup.Get("/requests", middleware.JWTMiddleware, mentorController.GetMentorshipRequests)
	mentorshipGroup.Post("/:id/accept", middleware.JWTMiddleware, mentorValidator.RequestID(), mentorController.AcceptRequest)
	mentorshipGroup.Post("/:id/reject", middleware.JWTMiddleware, mentorValidator.RequestID(), mentorController.RejectRequest)
	mentorshipGroup.Post("/:id/schedule", middleware.JWTMiddleware, mentorValidator.ScheduleSession(), mentorController.ScheduleSession)
	mentorshipGroup.Get("/mentees", middleware.JWTMiddleware, mentorController.GetMyMentees)
}
