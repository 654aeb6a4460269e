package userValidator

import (
	"iiacademy/middleware"
	"iiacademy/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(phone)
}

// UpdateProfileRequest carries the optional self-service profile fields.
// Nil means "leave unchanged".
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == nil && reqData.PhoneNumber == nil {
			errors["fields"] = "Provide at least one of name or phoneNumber!"
		}

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name can't be empty!"
		}

		if reqData.PhoneNumber != nil && !isValidPhone(*reqData.PhoneNumber) {
			errors["phoneNumber"] = "Invalid phone number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// ChangeRoleRequest carries the admin role-elevation payload
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole validator middleware
func ChangeRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangeRoleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Role != models.RoleUser && reqData.Role != models.RoleAdmin {
			errors["role"] = "Role must be 'user' or 'admin'!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}
