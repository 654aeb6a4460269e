package controllers

import (
	"iiacademy/config"
	"iiacademy/database"
	"iiacademy/middleware"
	"iiacademy/models"
	"iiacademy/utils"
	courseValidator "iiacademy/validators/course"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MakePayment records a simulated payment and flips the user's paid
// flag. Repeat payments are intentionally additive (renewals): each call
// appends a ledger row and the flag stays true.
func MakePayment(c *fiber.Ctx) error {
	callerID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*courseValidator.MakePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// An admin may pass a target userId; everyone else pays for themselves
	targetID := reqData.UserID
	if targetID == 0 {
		targetID = callerID
	}

	var user models.User
	if err := database.Database.Db.First(&user, targetID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
	}

	amount := reqData.Amount
	if amount == 0 {
		amount = config.AppConfig.DefaultAmount
	}

	transactionID := reqData.TransactionID
	if transactionID == "" {
		transactionID = utils.GenerateTransactionID()
	}

	payment := models.Payment{
		UserID:        user.ID,
		Amount:        amount,
		PaymentStatus: models.PaymentCompleted,
		TransactionID: transactionID,
	}

	// Ledger row and entitlement flag move together or not at all
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Model(&user).Updates(map[string]interface{}{
			"has_paid":   true,
			"payment_id": payment.ID,
		}).Error
	})
	if err != nil {
		// A transaction id collision lands here as well. It is a server
		// error, never a silent overwrite.
		log.Printf("Error recording payment for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing payment!", nil)
	}

	utils.SendPaymentReceiptEmail(user.Email, user.Name, payment.TransactionID, payment.Amount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful, certificate unlocked!", fiber.Map{
		"payment": payment,
		"user": fiber.Map{
			"name":    user.Name,
			"email":   user.Email,
			"hasPaid": true,
		},
	})
}

// GetPaymentStatus returns a user's entitlement flag and latest payment
func GetPaymentStatus(c *fiber.Ctx) error {
	targetID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Preload("Payment").First(&user, uint(targetID)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status fetched successfully.", fiber.Map{
		"hasPaid":       user.HasPaid,
		"paymentStatus": user.Payment,
	})
}
