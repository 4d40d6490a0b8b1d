package mentorValidator

import (
	"strconv"
	"strings"
	"time"

	"shehub/middleware"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// RequestMentor validates the :id route parameter and the optional note.
func RequestMentor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mentorID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Mentor ID!", nil)
		}

		reqData := new(struct {
			Message string `json:"message"`
		})
		// The note is optional; an empty body is fine
		_ = c.BodyParser(reqData)

		c.Locals("mentorID", mentorID)
		c.Locals("requestMessage", reqData.Message)
		return c.Next()
	}
}

// MentorID validates the :id route parameter for mentor lookup routes.
func MentorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mentorID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Mentor ID!", nil)
		}

		c.Locals("mentorID", mentorID)
		return c.Next()
	}
}

// RequestID validates the :id route parameter for respond routes.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Request ID!", nil)
		}

		c.Locals("requestID", requestID)
		return c.Next()
	}
}

// ScheduleSession validates the :id route parameter and the session date.
func ScheduleSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mentorshipID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Mentorship ID!", nil)
		}

		reqData := new(struct {
			SessionDate string `json:"session_date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		sessionDate, err := time.Parse("2006-01-02T15:04", reqData.SessionDate)
		if err != nil {
			errors["session_date"] = "Session date must be in YYYY-MM-DDTHH:MM format!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("mentorshipID", mentorshipID)
		c.Locals("sessionDate", sessionDate)
		return c.Next()
	}
}
