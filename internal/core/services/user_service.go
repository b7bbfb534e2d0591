package services

import (
	"context"
	"errors"
	"log"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles employee record business logic
type UserService struct {
	userRepo     repositories.UserRepository
	positionRepo repositories.PositionRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	positionRepo repositories.PositionRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		positionRepo: positionRepo,
	}
}

// CreateUserInput represents create user input
type CreateUserInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Phone      string `json:"phone"`
	PositionID uint   `json:"position_id"`
	Password   string `json:"password"`
}

// UpdateUserInput represents update user input. Nil fields are left unchanged.
type UpdateUserInput struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Age        *int    `json:"age"`
	Phone      *string `json:"phone"`
	PositionID *uint   `json:"position_id"`
	Password   *string `json:"password"`
}

// ListUsers lists users with pagination
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}

	return responses, total, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// CreateUser creates a new employee record with its password hashed
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.UserResponse, error) {
	// 1. Email must be unique
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	// 2. Position must exist
	position, err := s.positionRepo.GetByID(ctx, input.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPositionNotFound
		}
		return nil, err
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Age:        input.Age,
		Phone:      input.Phone,
		PositionID: position.ID,
		Password:   hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	user.Position = *position

	log.Printf("User created: %s", user.Email)
	return user.ToResponse(), nil
}

// UpdateUser updates an employee record in place. A changed password is
// re-hashed before storage.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrEmailTaken
		}
		user.Email = *input.Email
	}

	if input.PositionID != nil && *input.PositionID != user.PositionID {
		position, err := s.positionRepo.GetByID(ctx, *input.PositionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrPositionNotFound
			}
			return nil, err
		}
		user.PositionID = position.ID
		user.Position = *position
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		hashedPassword, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("User updated: %d", user.ID)
	return user.ToResponse(), nil
}

// DeleteUser deletes an employee record
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("User deleted: %d", id)
	return nil
}
