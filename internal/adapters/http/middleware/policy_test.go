package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"hrdesk/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

func principalWithRole(userID uint, roleName string) *domain.Principal {
	return &domain.Principal{
		UserID: userID,
		Email:  "p@example.com",
		Role:   domain.RoleRef{ID: 1, Name: roleName},
	}
}

func TestPolicyEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		principal *domain.Principal
		targetID  uint
		wantErr   error
	}{
		{"authenticated allows principal", RequireAuthenticated(), principalWithRole(1, "Employee"), 0, nil},
		{"authenticated denies nil", RequireAuthenticated(), nil, 0, domain.ErrUnauthenticated},

		{"role exact match", RequireRole("admin"), principalWithRole(1, "admin"), 0, nil},
		{"role case-insensitive", RequireRole("admin"), principalWithRole(1, "ADMIN"), 0, nil},
		{"role mismatch", RequireRole("admin"), principalWithRole(1, "Employee"), 0, domain.ErrForbidden},
		{"role denies nil principal", RequireRole("admin"), nil, 0, domain.ErrUnauthenticated},

		{"any role first", RequireAnyRole("admin", "supervisor"), principalWithRole(1, "Admin"), 0, nil},
		{"any role second", RequireAnyRole("admin", "supervisor"), principalWithRole(1, "Supervisor"), 0, nil},
		{"any role mismatch", RequireAnyRole("admin", "supervisor"), principalWithRole(1, "Employee"), 0, domain.ErrForbidden},

		{"self-or-role: admin any target", RequireSelfOrRole("admin"), principalWithRole(5, "Admin"), 99, nil},
		{"self-or-role: self allowed", RequireSelfOrRole("admin"), principalWithRole(5, "Employee"), 5, nil},
		{"self-or-role: other denied", RequireSelfOrRole("admin"), principalWithRole(5, "Employee"), 6, domain.ErrForbidden},
		{"self-or-role: nil principal", RequireSelfOrRole("admin"), nil, 5, domain.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Evaluate(tt.principal, tt.targetID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Evaluate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// withPrincipal injects a principal the way Authenticate would.
func withPrincipal(p domain.Principal) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(principalKey, p)
		return c.Next()
	}
}

func TestEnforceShortCircuits(t *testing.T) {
	app := fiber.New()
	reached := false
	app.Get("/users/:id",
		withPrincipal(*principalWithRole(5, "Employee")),
		Enforce(RequireAuthenticated(), RequireSelfOrRole("admin")),
		func(c *fiber.Ctx) error {
			reached = true
			return c.SendStatus(fiber.StatusOK)
		})

	// Foreign target: denied before the handler runs.
	resp, err := app.Test(httptest.NewRequest("GET", "/users/6", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
	if reached {
		t.Error("business handler ran despite policy denial")
	}

	// Own record: allowed.
	resp, err = app.Test(httptest.NewRequest("GET", "/users/5", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !reached {
		t.Error("business handler did not run for an allowed request")
	}
}

func TestEnforceWithoutPrincipal(t *testing.T) {
	app := fiber.New()
	app.Get("/users",
		Enforce(RequireAuthenticated(), RequireAnyRole("admin", "supervisor")),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

	resp, err := app.Test(httptest.NewRequest("GET", "/users", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestEnforcePolicyOrder(t *testing.T) {
	// Both policies would deny; the first one in the chain decides the
	// response class.
	app := fiber.New()
	app.Get("/x",
		withPrincipal(*principalWithRole(1, "Employee")),
		Enforce(RequireRole("admin"), RequireRole("supervisor")),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}
