package authRoutes

import (
	authController "shehub/controllers/auth"
	"shehub/middleware"
	authValidator "shehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)

	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	userGroup.Post("/skill-assessment", middleware.JWTMiddleware, authValidator.SkillAssessment(), authController.SkillAssessment)
}
