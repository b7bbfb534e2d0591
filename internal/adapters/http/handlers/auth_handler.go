package handlers

import (
	"strings"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
// @Summary Login user
// @Description Authenticate by email and password and return the user with a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Login successful", result)
}

// ValidateToken handles token validation
// @Summary Validate token
// @Description Verify the presented bearer token and return its claims
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/validate [get]
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return response.FromError(c, domain.ErrMissingCredential)
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := h.authService.ValidateToken(c.Context(), tokenString)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Token is valid", claims)
}

// Logout acknowledges a logout. Tokens are stateless and non-revocable;
// the client discards its copy and the token dies at expiry.
// @Summary Logout user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return response.Success(c, "Logout successful", nil)
}
