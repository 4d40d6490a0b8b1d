package services

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"shehub/config"
	"shehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var certNumberPattern = regexp.MustCompile(`^CERT-[0-9A-F]{8}$`)

func TestNewCertificateNumberFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := newCertificateNumber()
		assert.Regexp(t, certNumberPattern, number)
		seen[number] = true
	}
	// 100 draws from a 16^8 space should never collide
	assert.Len(t, seen, 100)
}

func TestIssueCertificateWritesArtifact(t *testing.T) {
	db := setupTestDB(t)
	learner := createUser(t, db, models.RoleLearner)
	course := createCourse(t, db, "Web Development Fundamentals")

	completedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	cert, err := IssueCertificate(db, learner, course, completedAt)
	require.NoError(t, err)

	assert.Regexp(t, certNumberPattern, cert.CertificateNumber)
	assert.Equal(t, learner.ID, cert.UserID)
	assert.Equal(t, course.ID, cert.CourseID)
	assert.Equal(t, completedAt, cert.IssuedDate)
	require.True(t, strings.HasPrefix(cert.DownloadURL, "/certificates/"))

	// The row is stored
	var stored models.Certificate
	require.NoError(t, db.Where("certificate_number = ?", cert.CertificateNumber).First(&stored).Error)

	// The HTML artifact exists and carries the holder's details
	filename := strings.TrimPrefix(cert.DownloadURL, "/certificates/")
	contents, err := os.ReadFile(filepath.Join(config.AppConfig.CertificateDir, filename))
	require.NoError(t, err)
	assert.Contains(t, string(contents), learner.Name)
	assert.Contains(t, string(contents), course.Title)
	assert.Contains(t, string(contents), cert.CertificateNumber)
	assert.Contains(t, string(contents), "March 15, 2026")
}

func TestIssueCertificateNumbersAreUnique(t *testing.T) {
	db := setupTestDB(t)
	course := createCourse(t, db, "Digital Marketing Basics")

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		learner := createUser(t, db, models.RoleLearner)
		cert, err := IssueCertificate(db, learner, course, time.Now())
		require.NoError(t, err)
		assert.False(t, seen[cert.CertificateNumber])
		seen[cert.CertificateNumber] = true
	}
}
