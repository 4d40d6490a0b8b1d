package services

import (
	"errors"
	"fmt"
	"time"

	"shehub/models"

	"gorm.io/gorm"
)

// issueCertificate is swappable so tests can force issuer failure.
var issueCertificate = IssueCertificate

// Enroll creates a progress record for the caller on the given course.
// Only learners may enroll. The (user, course) pair is unique; a second
// enrollment attempt reports ErrAlreadyExists and leaves the existing
// record untouched.
func Enroll(db *gorm.DB, caller *models.User, courseID uint) (*models.Progress, error) {
	if !caller.IsLearner() {
		return nil, ErrForbidden
	}

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	progress := models.Progress{
		UserID:       caller.ID,
		CourseID:     course.ID,
		LastAccessed: now,
		StartedAt:    now,
	}

	// The unique index on (user_id, course_id) is the duplicate check.
	// Racing requests both hit the constraint; exactly one row survives.
	if err := db.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return &progress, nil
}

// UpdateProgress stores a new completion percentage for the caller's
// enrollment. Percentages outside [0,100] are rejected, not clamped.
//
// Crossing the 100% boundary for the first time marks the enrollment
// completed and mints a certificate, all in one transaction: if the
// issuer fails nothing is applied. Completion is one-way — a later
// update below 100 keeps Completed and CertificateIssued set, and
// repeated updates at or above 100 never mint a second certificate.
func UpdateProgress(db *gorm.DB, caller *models.User, courseID uint, percentage float64) (*models.Progress, error) {
	if !caller.IsLearner() {
		return nil, ErrForbidden
	}

	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: percentage must be between 0 and 100", ErrValidation)
	}

	var progress models.Progress
	if err := db.Where("user_id = ? AND course_id = ?", caller.ID, courseID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		progress.ProgressPercentage = percentage
		progress.LastAccessed = time.Now()

		if percentage >= 100 && !progress.Completed {
			completedAt := time.Now()
			progress.Completed = true
			progress.CompletedAt = &completedAt

			if !progress.CertificateIssued {
				var course models.Course
				if err := tx.Where("id = ?", courseID).First(&course).Error; err != nil {
					return err
				}
				if _, err := issueCertificate(tx, caller, &course, completedAt); err != nil {
					return fmt.Errorf("%w: %v", ErrDependency, err)
				}
				progress.CertificateIssued = true
			}
		}

		return tx.Save(&progress).Error
	})
	if err != nil {
		return nil, err
	}

	return &progress, nil
}

// ListEnrollments returns the caller's progress records with course data.
func ListEnrollments(db *gorm.DB, caller *models.User) ([]models.Progress, error) {
	var enrollments []models.Progress
	if err := db.Where("user_id = ?", caller.ID).Preload("Course").Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListCertificates returns the caller's issued certificates.
func ListCertificates(db *gorm.DB, caller *models.User) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := db.Where("user_id = ?", caller.ID).Order("issued_date desc").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}
