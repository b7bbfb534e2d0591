package services

import (
	"context"
	"errors"
	"log"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/core/domain"

	"gorm.io/gorm"
)

// PositionService handles position business logic
type PositionService struct {
	positionRepo repositories.PositionRepository
}

// NewPositionService creates a new position service
func NewPositionService(positionRepo repositories.PositionRepository) *PositionService {
	return &PositionService{positionRepo: positionRepo}
}

// CreatePositionInput represents create position input
type CreatePositionInput struct {
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

// UpdatePositionInput represents update position input
type UpdatePositionInput struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// ListPositions lists positions with pagination
func (s *PositionService) ListPositions(ctx context.Context, offset, limit int) ([]*models.Position, int64, error) {
	return s.positionRepo.List(ctx, offset, limit)
}

// GetPositionByID gets a position by ID
func (s *PositionService) GetPositionByID(ctx context.Context, id uint) (*models.Position, error) {
	position, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPositionNotFound
		}
		return nil, err
	}
	return position, nil
}

// CreatePosition creates a new position. Names are unique.
func (s *PositionService) CreatePosition(ctx context.Context, input *CreatePositionInput) (*models.Position, error) {
	if _, err := s.positionRepo.GetByName(ctx, input.Name); err == nil {
		return nil, domain.ErrPositionNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	position := &models.Position{
		Name:   input.Name,
		Active: active,
	}

	if err := s.positionRepo.Create(ctx, position); err != nil {
		return nil, err
	}

	log.Printf("Position created: %s", position.Name)
	return position, nil
}

// UpdatePosition updates a position. Renames keep names unique.
func (s *PositionService) UpdatePosition(ctx context.Context, id uint, input *UpdatePositionInput) (*models.Position, error) {
	position, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPositionNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != position.Name {
		existing, err := s.positionRepo.GetByName(ctx, *input.Name)
		if err == nil && existing.ID != position.ID {
			return nil, domain.ErrPositionNameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		position.Name = *input.Name
	}
	if input.Active != nil {
		position.Active = *input.Active
	}

	if err := s.positionRepo.Update(ctx, position); err != nil {
		return nil, err
	}

	log.Printf("Position updated: %d", position.ID)
	return position, nil
}

// DeletePosition removes a position unless users still hold it. The
// check and the delete are one transaction in the repository, so a
// concurrent hire cannot slip past the dependent count.
func (s *PositionService) DeletePosition(ctx context.Context, id uint) error {
	err := s.positionRepo.DeleteGuarded(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPositionNotFound
		}
		return err
	}

	log.Printf("Position deleted: %d", id)
	return nil
}
