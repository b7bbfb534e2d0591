package repositories

import (
	"context"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// positionRepository implements PositionRepository interface
type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

// Create creates a new position
func (r *positionRepository) Create(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

// GetByID gets a position by ID
func (r *positionRepository) GetByID(ctx context.Context, id uint) (*models.Position, error) {
	var position models.Position
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByName gets a position by name. MySQL's default collation makes the
// match case-insensitive, which is the comparison the role checks use.
func (r *positionRepository) GetByName(ctx context.Context, name string) (*models.Position, error) {
	var position models.Position
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// Update updates a position
func (r *positionRepository) Update(ctx context.Context, position *models.Position) error {
	return r.db.WithContext(ctx).Save(position).Error
}

// List lists positions with pagination
func (r *positionRepository) List(ctx context.Context, offset, limit int) ([]*models.Position, int64, error) {
	var positions []*models.Position
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Position{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&positions).Error; err != nil {
		return nil, 0, err
	}

	return positions, total, nil
}

// DeleteGuarded deletes a position inside a single transaction, refusing
// when any user still references it. The row lock on the position
// serializes the count against concurrent inserts of dependent users, so
// a dangling reference can never be committed.
func (r *positionRepository) DeleteGuarded(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var position models.Position
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&position, id).Error; err != nil {
			return err
		}

		var dependents int64
		if err := tx.Model(&models.User{}).
			Where("position_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return domain.ErrPositionHasUsers
		}

		return tx.Delete(&position).Error
	})
}
