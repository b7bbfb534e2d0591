package handlers

import (
	"strconv"
	"strings"

	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/pagination"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles employee record endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents create user request body
type CreateUserRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=50"`
	LastName   string `json:"last_name" validate:"required,max=50"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Age        int    `json:"age" validate:"required,gte=0,lte=80"`
	Phone      string `json:"phone" validate:"omitempty,numeric,max=10"`
	PositionID uint   `json:"position_id" validate:"required"`
	Password   string `json:"password" validate:"required,min=8,max=255"`
}

// UpdateUserRequest represents update user request body
type UpdateUserRequest struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=50"`
	LastName   *string `json:"last_name" validate:"omitempty,max=50"`
	Email      *string `json:"email" validate:"omitempty,email,max=100"`
	Age        *int    `json:"age" validate:"omitempty,gte=0,lte=80"`
	Phone      *string `json:"phone" validate:"omitempty,numeric,max=10"`
	PositionID *uint   `json:"position_id"`
	Password   *string `json:"password" validate:"omitempty,min=8,max=255"`
}

// ListUsers handles listing all users (Admin or Supervisor)
// @Summary List users
// @Description Get a paginated list of employees
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.userService.ListUsers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Users retrieved successfully",
		pagination.NewResponse(users, params, total))
}

// GetUser handles getting a user by ID (self or Admin)
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(c.Context(), uint(id))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "User retrieved successfully", user)
}

// CreateUser handles creating a new employee (Admin only)
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateUserRequest true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.userService.CreateUser(c.Context(), &services.CreateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Age:        req.Age,
		Phone:      req.Phone,
		PositionID: req.PositionID,
		Password:   req.Password,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "User created successfully", user)
}

// UpdateUser handles updating an employee (self or Admin)
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.userService.UpdateUser(c.Context(), uint(id), &services.UpdateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Age:        req.Age,
		Phone:      req.Phone,
		PositionID: req.PositionID,
		Password:   req.Password,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "User updated successfully", user)
}

// DeleteUser handles deleting an employee (Admin only)
// @Summary Delete user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(c.Context(), uint(id)); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "User deleted successfully", nil)
}
