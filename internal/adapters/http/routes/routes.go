package routes

import (
	"hrdesk/internal/adapters/http/handlers"
	"hrdesk/internal/adapters/http/middleware"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/config"
	"hrdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application. Every route declares
// its policy chain here, statically; nothing computes policies at runtime.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	positionRepo := repositories.NewPositionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo, positionRepo)
	positionService := services.NewPositionService(positionRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	positionHandler := handlers.NewPositionHandler(positionService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	authenticated := middleware.Authenticate(cfg)

	// Auth routes
	auth := apiV1.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Get("/validate", authHandler.ValidateToken)
	auth.Post("/logout", authenticated, authHandler.Logout)

	// User routes
	users := apiV1.Group("/users", authenticated)
	users.Get("/",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireAnyRole("admin", "supervisor"),
		),
		userHandler.ListUsers)
	users.Post("/",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireRole("admin"),
		),
		userHandler.CreateUser)
	users.Get("/:id",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireSelfOrRole("admin"),
		),
		userHandler.GetUser)
	users.Put("/:id",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireSelfOrRole("admin"),
		),
		userHandler.UpdateUser)
	users.Delete("/:id",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireRole("admin"),
		),
		userHandler.DeleteUser)

	// Position routes
	positions := apiV1.Group("/positions", authenticated)
	positions.Get("/",
		middleware.Enforce(middleware.RequireAuthenticated()),
		positionHandler.ListPositions)
	positions.Post("/",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireRole("admin"),
		),
		positionHandler.CreatePosition)
	positions.Get("/:id",
		middleware.Enforce(middleware.RequireAuthenticated()),
		positionHandler.GetPosition)
	positions.Put("/:id",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireRole("admin"),
		),
		positionHandler.UpdatePosition)
	positions.Delete("/:id",
		middleware.Enforce(
			middleware.RequireAuthenticated(),
			middleware.RequireRole("admin"),
		),
		positionHandler.DeletePosition)
}
