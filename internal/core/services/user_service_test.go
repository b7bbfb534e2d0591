package services

import (
	"context"
	"errors"
	"testing"

	"hrdesk/internal/core/domain"
	"hrdesk/internal/pkg/password"
)

func newUserService(t *testing.T) (*UserService, *stubUserRepo, *stubPositionRepo) {
	t.Helper()
	userRepo := newStubUserRepo()
	positionRepo := newStubPositionRepo()
	return NewUserService(userRepo, positionRepo), userRepo, positionRepo
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, userRepo, positionRepo := newUserService(t)
	position := seedPosition(t, positionRepo, "Employee", true)

	out, err := svc.CreateUser(context.Background(), &CreateUserInput{
		FirstName:  "John",
		LastName:   "Smith",
		Email:      "john@example.com",
		Age:        25,
		PositionID: position.ID,
		Password:   "plainsecret",
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	stored := userRepo.users[out.ID]
	if stored.Password == "plainsecret" {
		t.Fatal("password stored in plaintext")
	}
	if !password.Verify("plainsecret", stored.Password) {
		t.Error("stored hash does not match the password")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, userRepo, positionRepo := newUserService(t)
	position := seedPosition(t, positionRepo, "Employee", true)
	seedUser(t, userRepo, "john@example.com", "whatever99", true)

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		FirstName:  "John",
		LastName:   "Smith",
		Email:      "john@example.com",
		Age:        25,
		PositionID: position.ID,
		Password:   "plainsecret",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestCreateUserUnknownPosition(t *testing.T) {
	svc, _, _ := newUserService(t)

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		FirstName:  "John",
		LastName:   "Smith",
		Email:      "john@example.com",
		Age:        25,
		PositionID: 404,
		Password:   "plainsecret",
	})
	if !errors.Is(err, domain.ErrPositionNotFound) {
		t.Errorf("got %v, want ErrPositionNotFound", err)
	}
}

func TestUpdateUserRehashesChangedPassword(t *testing.T) {
	svc, userRepo, _ := newUserService(t)
	user := seedUser(t, userRepo, "jane@example.com", "oldsecret1", true)

	newPassword := "newsecret1"
	if _, err := svc.UpdateUser(context.Background(), user.ID, &UpdateUserInput{Password: &newPassword}); err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}

	stored := userRepo.users[user.ID]
	if stored.Password == newPassword {
		t.Fatal("new password stored in plaintext")
	}
	if !password.Verify(newPassword, stored.Password) {
		t.Error("stored hash does not match the new password")
	}
	if password.Verify("oldsecret1", stored.Password) {
		t.Error("old password still verifies after change")
	}
}

func TestUpdateUserEmailConflict(t *testing.T) {
	svc, userRepo, _ := newUserService(t)
	seedUser(t, userRepo, "taken@example.com", "whatever99", true)
	user := seedUser(t, userRepo, "jane@example.com", "whatever99", true)

	taken := "taken@example.com"
	if _, err := svc.UpdateUser(context.Background(), user.ID, &UpdateUserInput{Email: &taken}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestUpdateUserPartialFields(t *testing.T) {
	svc, userRepo, _ := newUserService(t)
	user := seedUser(t, userRepo, "jane@example.com", "whatever99", true)

	firstName := "Janet"
	out, err := svc.UpdateUser(context.Background(), user.ID, &UpdateUserInput{FirstName: &firstName})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if out.FirstName != "Janet" {
		t.Errorf("FirstName = %q, want Janet", out.FirstName)
	}
	if out.LastName != user.LastName || out.Email != user.Email {
		t.Error("untouched fields changed during partial update")
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, _, _ := newUserService(t)

	if err := svc.DeleteUser(context.Background(), 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc, _, _ := newUserService(t)

	if _, err := svc.GetUserByID(context.Background(), 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestListUsersReturnsSanitizedRecords(t *testing.T) {
	svc, userRepo, _ := newUserService(t)
	seedUser(t, userRepo, "a@example.com", "whatever99", true)
	seedUser(t, userRepo, "b@example.com", "whatever99", true)

	users, total, err := svc.ListUsers(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if total != 2 || len(users) != 2 {
		t.Errorf("total = %d, len = %d, want 2 and 2", total, len(users))
	}
}
