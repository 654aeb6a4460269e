package authController

import (
	"errors"
	"iiacademy/config"
	"iiacademy/database"
	"iiacademy/middleware"
	"iiacademy/models"
	"iiacademy/utils"
	authValidator "iiacademy/validators/auth"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetCodeTTL = 15 * time.Minute

// Register creates a new account and returns a session token. Accounts
// are always created with the user role; elevation is a separate
// admin-only operation.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	// Check if email already exists
	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:        reqData.Name,
		Email:       email,
		Password:    string(hashedPassword),
		PhoneNumber: reqData.PhoneNumber,
		Role:        models.RoleUser,
	}

	if err := db.Create(&newUser).Error; err != nil {
		// A concurrent registration may win the race on the unique
		// index after our existence check passed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"token": token,
	})
}

// Login authenticates by email and password. Unknown email and wrong
// password must be indistinguishable to the caller.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
	})
}

// ForgotPassword issues a single-use reset code to the account email.
// The response is the same whether or not the email exists, so the
// endpoint can't be used to enumerate accounts.
func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(reqData.Email))
	genericMsg := "If that email is registered, a reset code has been sent."

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, genericMsg, nil)
	}

	code := utils.GenerateResetCode()
	resetRecord := models.PasswordResetCode{
		UserID:    user.ID,
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}

	if err := database.Database.Db.Create(&resetRecord).Error; err != nil {
		log.Printf("Error saving reset code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	utils.SendPasswordResetEmail(user.Email, user.Name, code)

	return middleware.JsonResponse(c, fiber.StatusOK, true, genericMsg, nil)
}

// ResetPassword redeems a reset code and re-hashes the new secret. The
// code is the proof of ownership; a bare email is never enough.
func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired reset code!", nil)
	}

	var resetRecord models.PasswordResetCode
	if err := db.Where("email = ? AND code = ? AND is_used = ?", email, reqData.Code, false).
		First(&resetRecord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired reset code!", nil)
	}

	if resetRecord.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired reset code!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&resetRecord).Update("is_used", true).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("password", string(hashedPassword)).Error
	})
	if err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully.", nil)
}
