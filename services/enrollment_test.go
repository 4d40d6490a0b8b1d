package services

import (
	"errors"
	"testing"
	"time"

	"shehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnrollCreatesProgressAtZero(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Web Development Fundamentals")

	progress, err := Enroll(db, learner, course.ID)
	require.NoError(t, err)

	assert.Equal(t, learner.ID, progress.UserID)
	assert.Equal(t, course.ID, progress.CourseID)
	assert.Equal(t, 0.0, progress.ProgressPercentage)
	assert.False(t, progress.Completed)
	assert.False(t, progress.CertificateIssued)
	assert.False(t, progress.StartedAt.IsZero())
}

func TestEnrollTwiceReturnsAlreadyExists(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Digital Marketing Basics")

	_, err := Enroll(db, learner, course.ID)
	require.NoError(t, err)

	_, err = Enroll(db, learner, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	var count int64
	db.Model(&models.Progress{}).Where("user_id = ? AND course_id = ?", learner.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollRequiresLearnerRole(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "Leadership & Communication")

	for _, role := range []string{models.RoleMentor, models.RoleRecruiter} {
		caller := createUser(t, db, role)
		_, err := Enroll(db, caller, course.ID)
		assert.ErrorIs(t, err, ErrForbidden, "role %s should not enroll", role)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)

	_, err := Enroll(db, learner, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Data Analysis with Python")

	_, err := Enroll(db, learner, course.ID)
	require.NoError(t, err)

	_, err = UpdateProgress(db, learner, course.ID, 150)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = UpdateProgress(db, learner, course.ID, -5)
	assert.ErrorIs(t, err, ErrValidation)

	// The stored record is untouched
	var progress models.Progress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", learner.ID, course.ID).First(&progress).Error)
	assert.Equal(t, 0.0, progress.ProgressPercentage)
}

func TestUpdateProgressRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Graphic Design Fundamentals")

	_, err := UpdateProgress(db, learner, course.ID, 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProgressRequiresLearnerRole(t *testing.T) {
	db := setupTestDB(t)
	mentor := createUser(t, db, models.RoleMentor)
	course := createCourse(t, db, "Web Development Fundamentals")

	_, err := UpdateProgress(db, mentor, course.ID, 50)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCourseCompletionScenario(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Web Development Fundamentals")

	_, err := Enroll(db, learner, course.ID)
	require.NoError(t, err)

	// 60%: still in progress, no certificate
	progress, err := UpdateProgress(db, learner, course.ID, 60)
	require.NoError(t, err)
	assert.False(t, progress.Completed)

	var certCount int64
	db.Model(&models.Certificate{}).Where("user_id = ?", learner.ID).Count(&certCount)
	assert.Equal(t, int64(0), certCount)

	// 100%: completed, exactly one certificate with a real number
	progress, err = UpdateProgress(db, learner, course.ID, 100)
	require.NoError(t, err)
	assert.True(t, progress.Completed)
	assert.True(t, progress.CertificateIssued)
	require.NotNil(t, progress.CompletedAt)

	var cert models.Certificate
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", learner.ID, course.ID).First(&cert).Error)
	assert.NotEmpty(t, cert.CertificateNumber)

	// 100% again: issuance is idempotent
	firstCompletedAt := *progress.CompletedAt
	progress, err = UpdateProgress(db, learner, course.ID, 100)
	require.NoError(t, err)

	db.Model(&models.Certificate{}).Where("user_id = ?", learner.ID).Count(&certCount)
	assert.Equal(t, int64(1), certCount)
	assert.Equal(t, firstCompletedAt.Unix(), progress.CompletedAt.Unix())
}

func TestCompletionIsOneWay(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Digital Marketing Basics")

	_, err := Enroll(db, learner, course.ID)
	require.NoError(t, err)

	_, err = UpdateProgress(db, learner, course.ID, 100)
	require.NoError(t, err)

	// Regressing below 100 keeps the completion flags set
	progress, err := UpdateProgress(db, learner, course.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40.0, progress.ProgressPercentage)
	assert.True(t, progress.Completed)
	assert.True(t, progress.CertificateIssued)

	// Climbing back to 100 never mints a second certificate
	_, err = UpdateProgress(db, learner, course.ID, 100)
	require.NoError(t, err)

	var certCount int64
	db.Model(&models.Certificate{}).Where("user_id = ?", learner.ID).Count(&certCount)
	assert.Equal(t, int64(1), certCount)
}

func TestIssuerFailureRollsBackProgress(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Data Analysis with Python")

	_, err := Enroll(db, learner, course.ID)
	require.NoError(t, err)

	_, err = UpdateProgress(db, learner, course.ID, 60)
	require.NoError(t, err)

	original := issueCertificate
	issueCertificate = func(tx *gorm.DB, user *models.User, course *models.Course, completedAt time.Time) (*models.Certificate, error) {
		return nil, errors.New("issuer unavailable")
	}
	t.Cleanup(func() { issueCertificate = original })

	_, err = UpdateProgress(db, learner, course.ID, 100)
	assert.ErrorIs(t, err, ErrDependency)

	// Nothing from the failed transition is applied
	var progress models.Progress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", learner.ID, course.ID).First(&progress).Error)
	assert.Equal(t, 60.0, progress.ProgressPercentage)
	assert.False(t, progress.Completed)
	assert.False(t, progress.CertificateIssued)

	var certCount int64
	db.Model(&models.Certificate{}).Where("user_id = ?", learner.ID).Count(&certCount)
	assert.Equal(t, int64(0), certCount)
}
