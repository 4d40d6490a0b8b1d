package main

import (
	"log"

	"shehub/config"
	"shehub/database"
	authRoutes "shehub/routers/authRoutes"
	courseRoutes "shehub/routers/courseRoutes"
	dashboardRoutes "shehub/routers/dashboardRoutes"
	jobRoutes "shehub/routers/jobRoutes"
	mentorRoutes "shehub/routers/mentorRoutes"
	"shehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := database.SeedCourses(database.Database.Db); err != nil {
		log.Printf("Course seeding failed: %v", err)
	}

	// Daily reminder emails for upcoming mentorship sessions
	utils.InitializeSessionScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files (issued certificates live under /certificates)
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	mentorRoutes.SetupMentorRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
