package authController

import (
	"log"

	"shehub/config"
	"shehub/database"
	"shehub/middleware"
	"shehub/models"
	authValidator "shehub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new account. The role is fixed here for the
// account's lifetime; role-specific profile fields are stored only for
// the matching role.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Phone:    reqData.Phone,
		Location: reqData.Location,
		Role:     reqData.Role,
	}

	switch reqData.Role {
	case models.RoleMentor:
		newUser.Expertise = reqData.Expertise
		newUser.ExperienceYears = reqData.ExperienceYears
	case models.RoleRecruiter:
		newUser.Company = reqData.Company
		newUser.Position = reqData.Position
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login verifies credentials and returns a JWT carrying the user's role.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// GetProfile returns the authenticated user's profile.
func GetProfile(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	caller.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", caller)
}

// SkillAssessment stores a learner's education, interests and skill
// level. Learner-only, matching the original assessment form.
func SkillAssessment(c *fiber.Ctx) error {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if !caller.IsLearner() {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only learners can take the skill assessment!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*struct {
		Education  string `json:"education"`
		Interests  string `json:"interests"`
		SkillLevel string `json:"skill_level"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	caller.Education = reqData.Education
	caller.Interests = reqData.Interests
	caller.SkillLevel = reqData.SkillLevel

	if err := database.Database.Db.Save(caller).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save assessment!", nil)
	}

	caller.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill assessment completed!", caller)
}
