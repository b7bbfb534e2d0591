package handlers

import (
	"strconv"

	"hrdesk/internal/core/services"
	"hrdesk/internal/pkg/pagination"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// PositionHandler handles position endpoints
type PositionHandler struct {
	positionService *services.PositionService
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionService *services.PositionService) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// CreatePositionRequest represents create position request body
type CreatePositionRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=50"`
	Active *bool  `json:"active"`
}

// UpdatePositionRequest represents update position request body
type UpdatePositionRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=50"`
	Active *bool   `json:"active"`
}

// ListPositions handles listing all positions
// @Summary List positions
// @Tags Positions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /positions [get]
func (h *PositionHandler) ListPositions(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	positions, total, err := h.positionService.ListPositions(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Positions retrieved successfully",
		pagination.NewResponse(positions, params, total))
}

// GetPosition handles getting a position by ID
// @Summary Get position by ID
// @Tags Positions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /positions/{id} [get]
func (h *PositionHandler) GetPosition(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid position ID")
	}

	position, err := h.positionService.GetPositionByID(c.Context(), uint(id))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Position retrieved successfully", position)
}

// CreatePosition handles creating a new position (Admin only)
// @Summary Create position
// @Tags Positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePositionRequest true "Position data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *fiber.Ctx) error {
	var req CreatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	position, err := h.positionService.CreatePosition(c.Context(), &services.CreatePositionInput{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "Position created successfully", position)
}

// UpdatePosition handles updating a position (Admin only)
// @Summary Update position
// @Tags Positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Param body body UpdatePositionRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /positions/{id} [put]
func (h *PositionHandler) UpdatePosition(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid position ID")
	}

	var req UpdatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	position, err := h.positionService.UpdatePosition(c.Context(), uint(id), &services.UpdatePositionInput{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Position updated successfully", position)
}

// DeletePosition handles deleting a position (Admin only). Deletion is
// refused while any user still holds the position.
// @Summary Delete position
// @Tags Positions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid position ID")
	}

	if err := h.positionService.DeletePosition(c.Context(), uint(id)); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Position deleted successfully", nil)
}
