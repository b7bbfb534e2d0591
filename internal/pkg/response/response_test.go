package response

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"hrdesk/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

func TestFromErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing credential", domain.ErrMissingCredential, 401, "Access denied. No token provided."},
		{"invalid token", domain.ErrInvalidToken, 401, "Invalid token"},
		{"wrapped invalid token", fmt.Errorf("%w: signature mismatch", domain.ErrInvalidToken), 401, "Invalid token"},
		{"invalid credentials", domain.ErrInvalidCredentials, 401, "Invalid email or password"},
		{"position inactive", domain.ErrPositionInactive, 403, "Your position is currently inactive. Please contact administrator."},
		{"unauthenticated", domain.ErrUnauthenticated, 401, "Authentication required"},
		{"forbidden", domain.ErrForbidden, 403, "You don't have permission to access this resource"},
		{"user not found", domain.ErrUserNotFound, 404, "User not found"},
		{"position not found", domain.ErrPositionNotFound, 404, "Position not found"},
		{"position has users", domain.ErrPositionHasUsers, 400, "Cannot delete position with associated users"},
		{"email taken", domain.ErrEmailTaken, 409, "Email already exists"},
		{"position name taken", domain.ErrPositionNameTaken, 409, "Position name already exists"},
		{"unclassified", fmt.Errorf("disk on fire"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return FromError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body Response
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success {
				t.Error("success must be false for errors")
			}
			if body.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

func TestFromErrorNeverLeaksInternals(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return FromError(c, fmt.Errorf("dsn=root:hunter2@tcp(db:3306)"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "" || body.Message != "Internal server error" {
		t.Errorf("unclassified failure leaked detail: %+v", body)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Success(c, "done", fiber.Map{"n": 1})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Message != "done" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}
