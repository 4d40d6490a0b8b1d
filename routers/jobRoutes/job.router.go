package jobRoutes

import (
	jobController "shehub/controllers/job"
	"shehub/middleware"
	jobValidator "shehub/validators/job"

	"github.com/gofiber/fiber/v2"
)

// SetupJobRoutes sets up job board and application routes
func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/job")

	jobGroup.Get("/list", middleware.JWTMiddleware, jobController.GetAllJobs)
	jobGroup.Get("/:id", middleware.JWTMiddleware, jobValidator.JobID(), jobController.GetJobDetails)

	// Recruiter routes
	jobGroup.Post("/post", middleware.JWTMiddleware, jobValidator.PostJob(), jobController.PostJob)
	jobGroup.Post("/:id/deactivate", middleware.JWTMiddleware, jobValidator.JobID(), jobController.DeactivateJob)
	jobGroup.Get("/:id/applicants", middleware.JWTMiddleware, jobValidator.JobID(), jobController.GetApplicants)

	// Learner routes
	jobGroup.Post("/:id/apply", middleware.JWTMiddleware, jobValidator.ApplyJob(), jobController.ApplyToJob)

	userGroup := app.Group("/user")
	userGroup.Get("/my-job-listings", middleware.JWTMiddleware, jobController.GetMyJobListings)

	applicationGroup := app.Group("/application")
	applicationGroup.Post("/:id/status/:status", middleware.JWTMiddleware, jobValidator.UpdateApplication(), jobController.UpdateApplicationStatus)
}
