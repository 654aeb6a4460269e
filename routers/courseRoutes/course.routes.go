package courseRoutes

import (
	controllers "iiacademy/controllers/course"
	"iiacademy/middleware"
	"iiacademy/models"
	validators "iiacademy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog and payment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Payment routes (any authenticated user). Registered before the
	// catalog param routes so "payment" is not captured as :courseId.
	courseGroup.Post("/payment", middleware.JWTMiddleware, validators.MakePayment(), controllers.MakePayment)
	courseGroup.Get("/payment/:userId", middleware.JWTMiddleware, controllers.GetPaymentStatus)

	// Catalog CRUD (admin-only)
	courseGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.GetAllCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:courseId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:courseId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteCourse)
}
