package repositories

import (
	"context"

	"hrdesk/internal/adapters/persistence/models"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByPosition(ctx context.Context, positionID uint) (int64, error)
}

// PositionRepository defines position data access operations
type PositionRepository interface {
	Create(ctx context.Context, position *models.Position) error
	GetByID(ctx context.Context, id uint) (*models.Position, error)
	GetByName(ctx context.Context, name string) (*models.Position, error)
	Update(ctx context.Context, position *models.Position) error
	List(ctx context.Context, offset, limit int) ([]*models.Position, int64, error)

	// DeleteGuarded removes a position only if no user references it.
	// The existence check, the dependent count and the delete run in one
	// transaction; any failure rolls the whole operation back.
	DeleteGuarded(ctx context.Context, id uint) error
}
