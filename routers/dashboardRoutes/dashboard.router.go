package dashboardRoutes

import (
	dashboardController "shehub/controllers/dashboard"
	"shehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the role-specific dashboard route
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.JWTMiddleware, dashboardController.GetDashboard)
}
