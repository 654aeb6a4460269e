package courseValidator

import (
	"iiacademy/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the validated course-creation payload
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Instructor  string `json:"instructor"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Duration <= 0 {
			errors["duration"] = "Duration must be a positive number of days!"
		}

		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseRequest carries optional course fields. Nil means "leave
// unchanged".
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    *int64  `json:"duration"`
	Instructor  *string `json:"instructor"`
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title can't be empty!"
		}

		if reqData.Description != nil && strings.TrimSpace(*reqData.Description) == "" {
			errors["description"] = "Description can't be empty!"
		}

		if reqData.Duration != nil && *reqData.Duration <= 0 {
			errors["duration"] = "Duration must be a positive number of days!"
		}

		if reqData.Instructor != nil && strings.TrimSpace(*reqData.Instructor) == "" {
			errors["instructor"] = "Instructor can't be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
