package authValidator

import (
	"strings"

	"shehub/middleware"
	"shehub/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SignupRequest is the signup payload. Role-specific fields are only
// meaningful for the matching role and are ignored otherwise.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"required"`
	Location        string `json:"location" validate:"required"`
	Role            string `json:"role" validate:"required"`

	// Mentor fields
	Expertise       string `json:"expertise"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`

	// Recruiter fields
	Company  string `json:"company"`
	Position string `json:"position"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name must be between 2 and 100 characters!"
				case "Email":
					errors["email"] = "Invalid email!"
				case "Password":
					errors["password"] = "Password must be at least 6 characters long!"
				case "ConfirmPassword":
					errors["confirm_password"] = "Passwords do not match!"
				case "Phone":
					errors["phone"] = "Phone is required!"
				case "Location":
					errors["location"] = "Location is required!"
				case "Role":
					errors["role"] = "Role is required!"
				case "ExperienceYears":
					errors["experience_years"] = "Experience years must not be negative!"
				}
			}
		}

		// Role is fixed at signup; only the three known roles are allowed
		switch strings.ToUpper(strings.TrimSpace(reqData.Role)) {
		case models.RoleLearner, models.RoleMentor, models.RoleRecruiter:
			reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		default:
			errors["role"] = "Role must be one of LEARNER, MENTOR, RECRUITER!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Email":
					errors["email"] = "Invalid email!"
				case "Password":
					errors["password"] = "Password is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// SkillAssessment validator middleware
func SkillAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Education  string `json:"education"`
			Interests  string `json:"interests"`
			SkillLevel string `json:"skill_level"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}
