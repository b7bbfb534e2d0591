package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/adapters/persistence/repositories"
	"hrdesk/internal/config"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/jwt"
	"hrdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config

	// verifyPassword is swappable so tests can observe that the secret
	// comparison is never reached for an inactive position.
	verifyPassword func(plain, hash string) bool
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		cfg:            cfg,
		verifyPassword: password.Verify,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput represents the login response payload: the sanitized user
// plus the issued token.
type LoginOutput struct {
	*models.UserResponse
	Token string `json:"token"`
}

// Login authenticates a user by email and password and issues a token.
//
// The checks run in a fixed order: user lookup, position-active check,
// then password verification. An unknown email and a wrong password both
// yield ErrInvalidCredentials so callers cannot probe which part failed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	// 1. Find user by exact email match, with its position
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Reject before touching the password when the position is disabled
	if !user.Position.Active {
		return nil, domain.ErrPositionInactive
	}

	// 3. Verify password
	if !s.verifyPassword(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 4. Issue token from the principal claims
	token, err := jwt.GenerateToken(
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Position.ID,
		user.Position.Name,
		s.cfg.JWT.Secret,
		s.cfg.JWT.TokenLifetime,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Email)

	return &LoginOutput{
		UserResponse: user.ToResponse(),
		Token:        token,
	}, nil
}

// ValidateToken verifies a token and re-checks that its user still exists
// and still holds an active position.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	claims, err := jwt.ValidateToken(tokenString, s.cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", domain.ErrInvalidToken)
		}
		return nil, err
	}
	if !user.Position.Active {
		return nil, domain.ErrPositionInactive
	}

	return claims, nil
}
