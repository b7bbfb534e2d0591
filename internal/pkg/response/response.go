package response

import (
	"errors"

	"hrdesk/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail sends an error response with a stable message
func Fail(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Message: message,
	})
}

// FailWithDetail sends an error response carrying extra diagnostic detail
func FailWithDetail(c *fiber.Ctx, statusCode int, message, detail string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message)
}

// FromError translates a domain error into its HTTP response. This is the
// only place where business failures are mapped to status codes; handlers
// and middleware must not inspect error text.
func FromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return Unauthorized(c, "Access denied. No token provided.")
	case errors.Is(err, domain.ErrInvalidToken):
		return FailWithDetail(c, fiber.StatusUnauthorized, "Invalid token", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Unauthorized(c, "Invalid email or password")
	case errors.Is(err, domain.ErrPositionInactive):
		return Forbidden(c, "Your position is currently inactive. Please contact administrator.")
	case errors.Is(err, domain.ErrUnauthenticated):
		return Unauthorized(c, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden(c, "You don't have permission to access this resource")
	case errors.Is(err, domain.ErrUserNotFound):
		return NotFound(c, "User not found")
	case errors.Is(err, domain.ErrPositionNotFound):
		return NotFound(c, "Position not found")
	case errors.Is(err, domain.ErrPositionHasUsers):
		return FailWithDetail(c, fiber.StatusBadRequest,
			"Cannot delete position with associated users",
			"Cannot delete position with associated users")
	case errors.Is(err, domain.ErrEmailTaken):
		return Conflict(c, "Email already exists")
	case errors.Is(err, domain.ErrPositionNameTaken):
		return Conflict(c, "Position name already exists")
	default:
		return InternalServerError(c, "Internal server error")
	}
}
