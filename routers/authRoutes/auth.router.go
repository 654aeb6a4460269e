package authRoutes

import (
	authControllers "iiacademy/controllers/auth"
	authValidators "iiacademy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/forgot-password", authValidators.ForgotPassword(), authControllers.ForgotPassword)
	authGroup.Post("/reset-password", authValidators.ResetPassword(), authControllers.ResetPassword)
}
