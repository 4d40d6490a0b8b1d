package jobController

import (
	"errors"
	"log"

	"shehub/database"
	"shehub/middleware"
	"shehub/models"
	"shehub/services"
	jobValidator "shehub/validators/job"

	"github.com/gofiber/fiber/v2"
)

// GetAllJobs lists active postings with an optional location filter.
func GetAllJobs(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUser(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("is_active = ?", true)

	if location := c.Query("location"); location != "" {
		db = db.Where("location LIKE ?", "%"+location+"%")
	}

	var jobs []models.Job
	if err := db.Order("created_at desc").Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", jobs)
}

// GetJobDetails returns one posting plus whether the caller has applied.
func GetJobDetails(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(uint)

	var job models.Job
	if err := database.Database.Db.Where("id = ?", jobID).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	hasApplied := false
	if caller.IsLearner() {
		var application models.Application
		hasApplied = database.Database.Db.Where("user_id = ? AND job_id = ?", caller.ID, jobID).First(&application).Error == nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job details fetched successfully!", fiber.Map{
		"job":         job,
		"has_applied": hasApplied,
	})
}

// PostJob creates a posting owned by the calling recruiter.
func PostJob(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedJob").(*jobValidator.PostJobRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	job, err := services.PostJob(database.Database.Db, caller, services.JobInput{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Location:     reqData.Location,
		Requirements: reqData.Requirements,
		SalaryRange:  reqData.SalaryRange,
	})
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only recruiters can post jobs!", nil)
	case err != nil:
		log.Printf("Error posting job for recruiter %d: %v", caller.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job posted successfully!", job)
}

// DeactivateJob flips a posting inactive so it stops taking applications.
func DeactivateJob(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(uint)

	job, err := services.DeactivateJob(database.Database.Db, caller, jobID)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only deactivate your own job postings!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	case err != nil:
		log.Printf("Error deactivating job %d: %v", jobID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job deactivated successfully!", job)
}

// ApplyToJob submits an application to an active posting.
func ApplyToJob(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(uint)
	resume, _ := c.Locals("applyResume").(string)
	coverLetter, _ := c.Locals("applyCoverLetter").(string)

	application, err := services.Apply(database.Database.Db, caller, jobID, resume, coverLetter)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only learners can apply for jobs!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found or no longer active!", nil)
	case errors.Is(err, services.ErrAlreadyExists):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already applied for this job!", nil)
	case err != nil:
		log.Printf("Error applying user %d to job %d: %v", caller.ID, jobID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// GetMyJobListings returns all postings owned by the calling recruiter.
func GetMyJobListings(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if !caller.IsRecruiter() {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only recruiters can view their job listings!", nil)
	}

	var jobs []models.Job
	if err := database.Database.Db.Where("recruiter_id = ?", caller.ID).Order("created_at desc").Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch job listings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job listings fetched successfully!", jobs)
}

// GetApplicants returns the applications for one of the caller's jobs.
func GetApplicants(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(uint)

	applications, err := services.ListApplicants(database.Database.Db, caller, jobID)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only view applicants for your own job postings!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	case err != nil:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applicants!", nil)
	}

	for i := range applications {
		applications[i].User.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applicants fetched successfully!", fiber.Map{
		"applications": applications,
		"total":        len(applications),
	})
}

// UpdateApplicationStatus moves an application through the review
// workflow. Unknown statuses are rejected.
func UpdateApplicationStatus(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	applicationID := c.Locals("applicationID").(uint)
	status := c.Locals("applicationStatus").(string)

	application, err := services.UpdateApplicationStatus(database.Database.Db, caller, applicationID, status)
	switch {
	case errors.Is(err, services.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Status must be one of pending, reviewed, shortlisted, rejected!", nil)
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update applications for your own job postings!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	case err != nil:
		log.Printf("Error updating application %d: %v", applicationID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application status updated successfully!", application)
}
