package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mkzaman/customer-backend-go/config"
	"github.com/mkzaman/customer-backend-go/database"
	customMiddleware "github.com/mkzaman/customer-backend-go/middleware"
	"github.com/mkzaman/customer-backend-go/models"
	"github.com/mkzaman/customer-backend-go/routes"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize Echo
	e := echo.New()
	e.Validator = models.Validator{}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(customMiddleware.Metrics)

	// Connect to MongoDB
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Setup routes
	routes.SetupRoutes(e)

	// Start the server
	port := config.GetEnv("PORT", "3000")
	e.Logger.Fatal(e.Start(":" + port))
}
