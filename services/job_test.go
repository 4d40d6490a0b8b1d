package services

import (
	"testing"

	"shehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJobRecruiterOnly(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	mentor := createUser(t, db, models.RoleMentor)
	recruiter := createUser(t, db, models.RoleRecruiter)

	input := JobInput{Title: "Backend Developer", Description: "Go services", Location: "Remote"}

	_, err := PostJob(db, learner, input)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = PostJob(db, mentor, input)
	assert.ErrorIs(t, err, ErrForbidden)

	job, err := PostJob(db, recruiter, input)
	require.NoError(t, err)
	assert.Equal(t, recruiter.ID, job.RecruiterID)
	assert.Equal(t, "Acme Inc", job.Company) // comes from the recruiter profile
	assert.True(t, job.IsActive)
}

func TestApplyRequiresLearnerRole(t *testing.T) {
	db := setupTestDB(t)
	recruiter := createUser(t, db, models.RoleRecruiter)
	mentor := createUser(t, db, models.RoleMentor)
	job := createJob(t, db, recruiter, true)

	_, err := Apply(db, mentor, job.ID, "", "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = Apply(db, recruiter, job.ID, "", "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplyToMissingOrInactiveJob(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	recruiter := createUser(t, db, models.RoleRecruiter)
	inactive := createJob(t, db, recruiter, false)

	_, err := Apply(db, learner, 9999, "", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Apply(db, learner, inactive.ID, "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicationLifecycleScenario(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	recruiter := createUser(t, db, models.RoleRecruiter)
	job := createJob(t, db, recruiter, true)

	// Apply goes to pending
	application, err := Apply(db, learner, job.ID, "resume.pdf", "Dear team")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.Equal(t, "resume.pdf", application.Resume)

	// Applying again is blocked
	_, err = Apply(db, learner, job.ID, "", "")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	var count int64
	db.Model(&models.Application{}).Where("user_id = ? AND job_id = ?", learner.ID, job.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// The owning recruiter shortlists
	application, err = UpdateApplicationStatus(db, recruiter, application.ID, models.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationShortlisted, application.Status)

	// Unknown statuses are rejected
	_, err = UpdateApplicationStatus(db, recruiter, application.ID, "bogus")
	assert.ErrorIs(t, err, ErrValidation)

	// The stored status is untouched by the rejected update
	var stored models.Application
	require.NoError(t, db.Where("id = ?", application.ID).First(&stored).Error)
	assert.Equal(t, models.ApplicationShortlisted, stored.Status)
}

func TestUpdateStatusOwnershipChecks(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	recruiter := createUser(t, db, models.RoleRecruiter)
	otherRecruiter := createUser(t, db, models.RoleRecruiter)
	job := createJob(t, db, recruiter, true)

	application, err := Apply(db, learner, job.ID, "", "")
	require.NoError(t, err)

	// Another recruiter cannot triage this application
	_, err = UpdateApplicationStatus(db, otherRecruiter, application.ID, models.ApplicationReviewed)
	assert.ErrorIs(t, err, ErrForbidden)

	// Neither can the applicant
	_, err = UpdateApplicationStatus(db, learner, application.ID, models.ApplicationReviewed)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = UpdateApplicationStatus(db, recruiter, 9999, models.ApplicationReviewed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateJobOwnership(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	recruiter := createUser(t, db, models.RoleRecruiter)
	otherRecruiter := createUser(t, db, models.RoleRecruiter)
	job := createJob(t, db, recruiter, true)

	_, err := DeactivateJob(db, learner, job.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = DeactivateJob(db, otherRecruiter, job.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	deactivated, err := DeactivateJob(db, recruiter, job.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	// Applications are closed once the posting is inactive
	_, err = Apply(db, learner, job.ID, "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListApplicantsOwnership(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	recruiter := createUser(t, db, models.RoleRecruiter)
	otherRecruiter := createUser(t, db, models.RoleRecruiter)
	job := createJob(t, db, recruiter, true)

	_, err := Apply(db, learner, job.ID, "", "")
	require.NoError(t, err)

	_, err = ListApplicants(db, learner, job.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = ListApplicants(db, otherRecruiter, job.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	applications, err := ListApplicants(db, recruiter, job.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, learner.ID, applications[0].UserID)
}
