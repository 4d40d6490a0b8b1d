package dashboardController

import (
	"shehub/database"
	"shehub/middleware"
	"shehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the role-specific dashboard payload: learners see
// catalog highlights and their progress, mentors see mentees and the
// pending request count, recruiters see their postings and application
// volume.
func GetDashboard(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	switch caller.Role {
	case models.RoleLearner:
		var courses []models.Course
		db.Limit(3).Find(&courses)

		var jobs []models.Job
		db.Where("is_active = ?", true).Limit(3).Find(&jobs)

		var mentors []models.User
		db.Where("role = ?", models.RoleMentor).Limit(3).Find(&mentors)
		for i := range mentors {
			mentors[i].Password = ""
		}

		var progress []models.Progress
		db.Where("user_id = ?", caller.ID).Preload("Course").Find(&progress)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"courses":  courses,
			"jobs":     jobs,
			"mentors":  mentors,
			"progress": progress,
		})

	case models.RoleMentor:
		var mentees []models.Mentorship
		db.Where("mentor_id = ? AND status = ?", caller.ID, models.MentorshipAccepted).Preload("Mentee").Find(&mentees)

		var pendingRequests int64
		db.Model(&models.Mentorship{}).Where("mentor_id = ? AND status = ?", caller.ID, models.MentorshipPending).Count(&pendingRequests)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"mentees":          mentees,
			"pending_requests": pendingRequests,
		})

	case models.RoleRecruiter:
		var jobs []models.Job
		db.Where("recruiter_id = ?", caller.ID).Find(&jobs)

		var applications int64
		db.Model(&models.Application{}).
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.recruiter_id = ?", caller.ID).
			Count(&applications)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"jobs":         jobs,
			"applications": applications,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unknown role!", nil)
}
