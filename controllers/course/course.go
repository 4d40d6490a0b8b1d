package controllers

import (
	"errors"
	"log"

	"shehub/database"
	"shehub/middleware"
	"shehub/models"
	"shehub/services"
	"shehub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog with optional category/level filters.
func GetAllCourses(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentUser(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.Course{})

	if category := c.Query("category"); category != "" && category != "all" {
		db = db.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" && level != "all" {
		db = db.Where("level = ?", level)
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one course plus the caller's progress on it.
func GetCourseDetails(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var progress *models.Progress
	var record models.Progress
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", caller.ID, courseID).First(&record).Error; err == nil {
		progress = &record
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":   course,
		"progress": progress,
	})
}

// EnrollInCourse enrolls the caller into a course at 0% progress.
func EnrollInCourse(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	progress, err := services.Enroll(database.Database.Db, caller, courseID)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only learners can enroll in courses!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, services.ErrAlreadyExists):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	case err != nil:
		log.Printf("Error enrolling user %d in course %d: %v", caller.ID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", progress)
}

// UpdateProgress stores a new completion percentage. Crossing 100% for
// the first time completes the course and issues the certificate.
func UpdateProgress(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	percentage := c.Locals("validatedPercentage").(float64)

	wasCompleted := false
	var before models.Progress
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", caller.ID, courseID).First(&before).Error; err == nil {
		wasCompleted = before.Completed
	}

	progress, err := services.UpdateProgress(database.Database.Db, caller, courseID, percentage)
	switch {
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only learners can update course progress!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "You are not enrolled in this course!", nil)
	case errors.Is(err, services.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Percentage must be between 0 and 100!", nil)
	case errors.Is(err, services.ErrDependency):
		log.Printf("Certificate issuance failed for user %d course %d: %v", caller.ID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate, progress not saved!", nil)
	case err != nil:
		log.Printf("Error updating progress for user %d course %d: %v", caller.ID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	message := "Progress updated successfully!"
	if progress.Completed && !wasCompleted {
		message = "Congratulations! You have completed the course. Your certificate is ready."

		var course models.Course
		if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err == nil {
			var cert models.Certificate
			if err := database.Database.Db.Where("user_id = ? AND course_id = ?", caller.ID, courseID).First(&cert).Error; err == nil {
				go func(email, name, title, number string) {
					if err := utils.SendCertificateIssuedEmail(email, name, title, number); err != nil {
						log.Printf("Error sending certificate email: %v", err)
					}
				}(caller.Email, caller.Name, course.Title, cert.CertificateNumber)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, progress)
}

// GetMyCourses returns the caller's enrollments with course data.
func GetMyCourses(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := services.ListEnrollments(database.Database.Db, caller)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// GetMyCertificates returns the caller's issued certificates.
func GetMyCertificates(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificates, err := services.ListCertificates(database.Database.Db, caller)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}
