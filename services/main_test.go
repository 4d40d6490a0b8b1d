package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"shehub/config"
	"shehub/database"
	"shehub/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB creates a throwaway sqlite database with the full schema.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey, same as the postgres connection in production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	database.RunMigrations(db)

	config.AppConfig = &config.Config{
		CertificateDir: t.TempDir(),
	}

	return db
}

var userSeq int

func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	userSeq++
	user := &models.User{
		Name:     fmt.Sprintf("User %d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "hashed",
		Role:     role,
	}
	if role == models.RoleRecruiter {
		user.Company = "Acme Inc"
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createCourse(t *testing.T, db *gorm.DB, title string) *models.Course {
	t.Helper()

	course := &models.Course{
		Title:    title,
		Category: "Technology",
		Level:    "Beginner",
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

func createJob(t *testing.T, db *gorm.DB, recruiter *models.User, active bool) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:       "Software Engineer",
		Description: "Build things",
		Company:     recruiter.Company,
		Location:    "Remote",
		RecruiterID: recruiter.ID,
		IsActive:    active,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create job: %v", err)
	}
	if !active {
		// gorm skips false on create because of the default:true tag
		if err := db.Model(job).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to deactivate job: %v", err)
		}
		job.IsActive = false
	}
	return job
}
