package inquiryValidator

import (
	"iiacademy/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(email)
}

// CreateInquiryRequest is the validated lead-capture payload
type CreateInquiryRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Course    string `json:"course"`
	StartDate string `json:"startDate"`
	Education string `json:"education"`
	City      string `json:"city"`
	Message   string `json:"message"`
	Source    string `json:"source"`
}

// CreateInquiry validator middleware
func CreateInquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateInquiryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !isValidEmail(strings.TrimSpace(reqData.Email)) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInquiry", reqData)
		return c.Next()
	}
}
