package mentorController

import (
	"errors"
	"log"
	"time"

	"shehub/database"
	"shehub/middleware"
	"shehub/models"
	"shehub/services"
	"shehub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllMentors lists mentor accounts with an optional expertise filter.
func GetAllMentors(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUser(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("role = ?", models.RoleMentor)

	if expertise := c.Query("expertise"); expertise != "" {
		db = db.Where("expertise LIKE ?", "%"+expertise+"%")
	}

	var mentors []models.User
	if err := db.Find(&mentors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentors!", nil)
	}

	for i := range mentors {
		mentors[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentors fetched successfully!", mentors)
}

// GetMentorDetails returns one mentor plus whether the caller has
// already sent them a request.
func GetMentorDetails(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	mentorID := c.Locals("mentorID").(uint)

	var mentor models.User
	if err := database.Database.Db.Where("id = ? AND role = ?", mentorID, models.RoleMentor).First(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	}

	hasRequested := false
	if caller.IsLearner() {
		var mentorship models.Mentorship
		hasRequested = database.Database.Db.Where("mentee_id = ? AND mentor_id = ?", caller.ID, mentorID).First(&mentorship).Error == nil
	}

	mentor.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor details fetched successfully!", fiber.Map{
		"mentor":        mentor,
		"has_requested": hasRequested,
	})
}

// RequestMentorship sends a mentorship request to a mentor.
func RequestMentorship(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	mentorID := c.Locals("mentorID").(uint)
	message, _ := c.Locals("requestMessage").(string)

	mentorship, err := services.RequestMentorship(database.Database.Db, caller, mentorID, message)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only learners can request mentorship!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
	case errors.Is(err, services.ErrAlreadyExists):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already sent a request to this mentor!", nil)
	case err != nil:
		log.Printf("Error creating mentorship request from %d to %d: %v", caller.ID, mentorID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send mentorship request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mentorship request sent successfully!", mentorship)
}

// GetMentorshipRequests returns the caller's pending requests.
func GetMentorshipRequests(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requests, err := services.PendingRequests(database.Database.Db, caller)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only mentors can view mentorship requests!", nil)
	case err != nil:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentorship requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship requests fetched successfully!", requests)
}

func respond(c *fiber.Ctx, decision string) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(uint)

	mentorship, err := services.RespondToRequest(database.Database.Db, caller, requestID, decision)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only respond to your own mentorship requests!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentorship request not found!", nil)
	case errors.Is(err, services.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Decision must be accept or reject!", nil)
	case err != nil:
		log.Printf("Error responding to mentorship request %d: %v", requestID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to respond to mentorship request!", nil)
	}

	if mentorship.Status == models.MentorshipAccepted {
		var mentee models.User
		if err := database.Database.Db.Where("id = ?", mentorship.MenteeID).First(&mentee).Error; err == nil {
			go func(email, menteeName, mentorName string) {
				if err := utils.SendMentorshipAcceptedEmail(email, menteeName, mentorName); err != nil {
					log.Printf("Error sending mentorship accepted email: %v", err)
				}
			}(mentee.Email, mentee.Name, caller.Name)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship request accepted!", mentorship)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentorship request rejected.", mentorship)
}

// AcceptRequest accepts a pending mentorship request.
func AcceptRequest(c *fiber.Ctx) error {
	return respond(c, "accept")
}

// RejectRequest rejects a pending mentorship request.
func RejectRequest(c *fiber.Ctx) error {
	return respond(c, "reject")
}

// ScheduleSession sets the session date on a mentorship.
func ScheduleSession(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	mentorshipID := c.Locals("mentorshipID").(uint)
	when := c.Locals("sessionDate").(time.Time)

	mentorship, err := services.ScheduleSession(database.Database.Db, caller, mentorshipID, when)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only schedule sessions for your own mentees!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentorship not found!", nil)
	case err != nil:
		log.Printf("Error scheduling session for mentorship %d: %v", mentorshipID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session scheduled successfully!", mentorship)
}

// GetMyMentees returns the caller's accepted mentorships.
func GetMyMentees(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	mentees, err := services.AcceptedMentees(database.Database.Db, caller)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only mentors can view their mentees!", nil)
	case err != nil:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentees!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentees fetched successfully!", mentees)
}
