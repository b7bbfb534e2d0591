package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/adapters/http/routes"
	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/config"
	"hrdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title HRDesk API
// @version 1.0
// @description HR record service: employees and positions with role-gated access

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Seed default positions and admin user
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("Warning: failed to seed data: %v", err)
	}

	// Start cron service for the daily headcount report
	cronService := services.NewCronService(
		repositories.NewUserRepository(db),
		repositories.NewPositionRepository(db),
	)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HRDesk API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
