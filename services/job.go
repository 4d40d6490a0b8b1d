package services

import (
	"errors"
	"fmt"
	"time"

	"shehub/models"

	"gorm.io/gorm"
)

// JobInput carries the recruiter-supplied fields of a posting.
type JobInput struct {
	Title        string
	Description  string
	Location     string
	Requirements string
	SalaryRange  string
}

// PostJob creates a job posting owned by the caller. Only recruiters may
// post; the company name comes from the recruiter's profile.
func PostJob(db *gorm.DB, caller *models.User, input JobInput) (*models.Job, error) {
	if !caller.IsRecruiter() {
		return nil, ErrForbidden
	}

	job := models.Job{
		Title:        input.Title,
		Description:  input.Description,
		Company:      caller.Company,
		Location:     input.Location,
		Requirements: input.Requirements,
		SalaryRange:  input.SalaryRange,
		RecruiterID:  caller.ID,
		IsActive:     true,
	}

	if err := db.Create(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// DeactivateJob flips the posting inactive. Only the owning recruiter may
// deactivate; inactive jobs no longer accept applications.
func DeactivateJob(db *gorm.DB, caller *models.User, jobID uint) (*models.Job, error) {
	if !caller.IsRecruiter() {
		return nil, ErrForbidden
	}

	var job models.Job
	if err := db.Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if job.RecruiterID != caller.ID {
		return nil, ErrForbidden
	}

	job.IsActive = false
	if err := db.Save(&job).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// Apply creates a pending application from the caller to the job. Only
// learners may apply, the job must exist and be active, and the
// (user, job) pair is unique.
func Apply(db *gorm.DB, caller *models.User, jobID uint, resume, coverLetter string) (*models.Application, error) {
	if !caller.IsLearner() {
		return nil, ErrForbidden
	}

	var job models.Job
	if err := db.Where("id = ? AND is_active = ?", jobID, true).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	application := models.Application{
		UserID:      caller.ID,
		JobID:       job.ID,
		Status:      models.ApplicationPending,
		AppliedAt:   time.Now(),
		Resume:      resume,
		CoverLetter: coverLetter,
	}

	if err := db.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return &application, nil
}

// UpdateApplicationStatus moves an application to a new status. The
// status must belong to the closed set; only the recruiter who owns the
// job may triage. Any status is reachable from any other — there is no
// ordering constraint on the review workflow.
func UpdateApplicationStatus(db *gorm.DB, caller *models.User, applicationID uint, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, fmt.Errorf("%w: unknown application status %q", ErrValidation, status)
	}

	var application models.Application
	if err := db.Preload("Job").Where("id = ?", applicationID).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if application.Job.RecruiterID != caller.ID {
		return nil, ErrForbidden
	}

	application.Status = status
	if err := db.Save(&application).Error; err != nil {
		return nil, err
	}

	return &application, nil
}

// ListApplicants returns the applications for a job. Recruiter-only, and
// only for the recruiter's own posting.
func ListApplicants(db *gorm.DB, caller *models.User, jobID uint) ([]models.Application, error) {
	if !caller.IsRecruiter() {
		return nil, ErrForbidden
	}

	var job models.Job
	if err := db.Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if job.RecruiterID != caller.ID {
		return nil, ErrForbidden
	}

	var applications []models.Application
	if err := db.Where("job_id = ?", jobID).Preload("User").Order("applied_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
