package middleware

import (
	"fmt"
	"strings"

	"hrdesk/internal/config"
	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/jwt"
	"hrdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// principalKey is the single Locals key the resolved Principal lives under.
const principalKey = "principal"

// Authenticate resolves the Authorization header into a Principal and
// attaches it to the request. It must run before any policy check;
// policies trust the attached Principal and do not re-verify the token.
func Authenticate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.FromError(c, domain.ErrMissingCredential)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwt.ValidateToken(tokenString, cfg.JWT.Secret)
		if err != nil {
			return response.FromError(c, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err))
		}

		c.Locals(principalKey, domain.Principal{
			UserID:    claims.UserID,
			Email:     claims.Email,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Role: domain.RoleRef{
				ID:   claims.Role.ID,
				Name: claims.Role.Name,
			},
		})

		return c.Next()
	}
}

// PrincipalFrom returns the Principal attached by Authenticate
func PrincipalFrom(c *fiber.Ctx) (domain.Principal, bool) {
	principal, ok := c.Locals(principalKey).(domain.Principal)
	return principal, ok
}
