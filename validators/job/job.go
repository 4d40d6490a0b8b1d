package jobValidator

import (
	"strconv"
	"strings"

	"shehub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// PostJobRequest is the job posting payload.
type PostJobRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Description  string `json:"description" validate:"required,min=5"`
	Location     string `json:"location" validate:"required"`
	Requirements string `json:"requirements"`
	SalaryRange  string `json:"salary_range"`
}

// PostJob validates the job posting payload.
func PostJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PostJobRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title must be between 3 and 200 characters!"
				case "Description":
					errors["description"] = "Description must be at least 5 characters long!"
				case "Location":
					errors["location"] = "Location is required!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

// JobID validates the :id route parameter.
func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobIDStr := strings.TrimSpace(c.Params("id"))
		jobID, err := strconv.Atoi(jobIDStr)
		if err != nil || jobID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Job ID!", nil)
		}

		c.Locals("jobID", uint(jobID))
		return c.Next()
	}
}

// ApplyJob validates the :id route parameter and the optional
// resume/cover-letter payload.
func ApplyJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobIDStr := strings.TrimSpace(c.Params("id"))
		jobID, err := strconv.Atoi(jobIDStr)
		if err != nil || jobID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Job ID!", nil)
		}

		reqData := new(struct {
			Resume      string `json:"resume"`
			CoverLetter string `json:"cover_letter"`
		})
		// Both fields are optional; an empty body is fine
		_ = c.BodyParser(reqData)

		c.Locals("jobID", uint(jobID))
		c.Locals("applyResume", reqData.Resume)
		c.Locals("applyCoverLetter", reqData.CoverLetter)
		return c.Next()
	}
}

// UpdateApplication validates the application id and status route
// parameters. The status enum itself is checked by the service.
func UpdateApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		appIDStr := strings.TrimSpace(c.Params("id"))
		appID, err := strconv.Atoi(appIDStr)
		if err != nil || appID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Application ID!", nil)
		}

		status := strings.TrimSpace(c.Params("status"))
		if status == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status is required!", nil)
		}

		c.Locals("applicationID", uint(appID))
		c.Locals("applicationStatus", status)
		return c.Next()
	}
}
