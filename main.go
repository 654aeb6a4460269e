package main

import (
	"iiacademy/config"
	"iiacademy/database"
	authRoutes "iiacademy/routers/authRoutes"
	courseRoutes "iiacademy/routers/courseRoutes"
	inquiryRoutes "iiacademy/routers/inquiryRoutes"
	userRoutes "iiacademy/routers/userRoutes"
	"iiacademy/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("IIAcademy Backend is running")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	inquiryRoutes.SetupInquiryRoutes(app)

	// Hourly purge of expired password reset codes
	utils.InitializeResetCodeCleanup()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
