package inquiryRoutes

import (
	inquiryController "iiacademy/controllers/inquiry"
	inquiryValidator "iiacademy/validators/inquiry"

	"github.com/gofiber/fiber/v2"
)

func SetupInquiryRoutes(app *fiber.App) {
	inquiryGroup := app.Group("/api/inquiries")

	inquiryGroup.Post("/", inquiryValidator.CreateInquiry(), inquiryController.CreateInquiry)
}
