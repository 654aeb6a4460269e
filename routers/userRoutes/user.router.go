package userRoutes

import (
	userController "iiacademy/controllers/userControllers"
	"iiacademy/middleware"
	"iiacademy/models"
	userValidator "iiacademy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	// Profile routes (self)
	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)
	userGroup.Delete("/profile", middleware.JWTMiddleware, userController.DeleteAccount)

	// Admin routes
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userController.DeleteUserByID)
	userGroup.Put("/:id/role", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userValidator.ChangeRole(), userController.ChangeUserRole)
}
