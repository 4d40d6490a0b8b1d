package middleware

import (
	"shehub/database"
	"shehub/models"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser loads the authenticated user for the request. JWTMiddleware
// must have run first so that userId is present in the request context.
// The loaded user is what controllers hand to the service layer; services
// never read session state themselves.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, false
	}

	return &user, true
}
