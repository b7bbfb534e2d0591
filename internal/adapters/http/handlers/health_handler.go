package handlers

import (
	"hrdesk/internal/config"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root handles the root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "HRDesk API", fiber.Map{
		"name":    "HRDesk API",
		"version": "1.0",
	})
}

// HealthCheck handles the health check endpoint
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := config.HealthCheck(); err != nil {
		dbStatus = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(response.Response{
			Success: false,
			Message: "Service unhealthy",
			Data:    fiber.Map{"database": dbStatus},
		})
	}

	return response.Success(c, "Service healthy", fiber.Map{
		"database": dbStatus,
	})
}

// APIInfo handles the API info endpoint
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return response.Success(c, "HRDesk API v1", fiber.Map{
		"endpoints": []string{
			"/api/v1/auth",
			"/api/v1/users",
			"/api/v1/positions",
		},
	})
}
