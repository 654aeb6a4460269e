package inquiryController

import (
	"iiacademy/database"
	"iiacademy/middleware"
	"iiacademy/models"
	"iiacademy/utils"
	inquiryValidator "iiacademy/validators/inquiry"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateInquiry stores a lead-capture record. Public endpoint; no
// account is involved.
func CreateInquiry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInquiry").(*inquiryValidator.CreateInquiryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := reqData.Course
	if course == "" {
		course = "Backend Development"
	}

	source := reqData.Source
	if source == "" {
		source = c.IP()
	}

	inquiry := models.Inquiry{
		Name:      strings.TrimSpace(reqData.Name),
		Email:     strings.ToLower(strings.TrimSpace(reqData.Email)),
		Phone:     strings.TrimSpace(reqData.Phone),
		Course:    course,
		StartDate: reqData.StartDate,
		Education: strings.TrimSpace(reqData.Education),
		City:      strings.TrimSpace(reqData.City),
		Message:   strings.TrimSpace(reqData.Message),
		Source:    source,
	}

	if err := database.Database.Db.Create(&inquiry).Error; err != nil {
		log.Printf("Error saving inquiry: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit inquiry!", nil)
	}

	utils.SendInquiryReceivedEmail(inquiry.Email, inquiry.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Inquiry submitted successfully.", fiber.Map{
		"id": inquiry.ID,
	})
}
