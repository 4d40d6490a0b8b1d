package database

import (
	"fmt"
	"log"
	"os"

	"shehub/config"
	"shehub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	// Open database connection
	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey, which the service layer relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations. The composite unique
// indexes on progress, mentorships and applications are what make the
// duplicate checks safe under concurrent requests.
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Job{},
		&models.Progress{},
		&models.Mentorship{},
		&models.Application{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedCourses inserts the starter catalog if the titles are not present yet.
func SeedCourses(db *gorm.DB) error {
	sampleCourses := []models.Course{
		{Title: "Web Development Fundamentals", Description: "Learn HTML, CSS, and JavaScript from scratch", Category: "Technology", Level: "Beginner", Duration: "8 weeks"},
		{Title: "Digital Marketing Basics", Description: "Master social media, SEO and digital strategy", Category: "Marketing", Level: "Beginner", Duration: "6 weeks"},
		{Title: "Data Analysis with Python", Description: "Learn data manipulation and visualization", Category: "Technology", Level: "Intermediate", Duration: "10 weeks"},
		{Title: "Leadership & Communication", Description: "Build confidence and leadership skills", Category: "Personal Development", Level: "Beginner", Duration: "4 weeks"},
		{Title: "Graphic Design Fundamentals", Description: "Learn Canva, Figma and design principles", Category: "Design", Level: "Beginner", Duration: "6 weeks"},
	}

	for _, course := range sampleCourses {
		if err := db.Where(models.Course{Title: course.Title}).FirstOrCreate(&course).Error; err != nil {
			return err
		}
	}
	return nil
}
