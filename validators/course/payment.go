package courseValidator

import (
	"iiacademy/middleware"

	"github.com/gofiber/fiber/v2"
)

// MakePaymentRequest is the validated payment payload. UserId falls back
// to the caller's own id when omitted; TransactionId is generated when
// omitted.
type MakePaymentRequest struct {
	UserID        uint   `json:"userId"`
	Amount        uint   `json:"amount"`
	TransactionID string `json:"transactionId"`
}

// MakePayment validator middleware
func MakePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MakePaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Amount 0 means "use the configured default"; anything else must
		// be positive, which the unsigned type already guarantees.
		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
