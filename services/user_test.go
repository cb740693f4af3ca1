package services

import (
	"testing"

	"github.com/BelkinSergey/shareit-server/models"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	if _, err := svc.Create(CreateUserInput{Name: "nick", Email: "nick@mail.ru"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(CreateUserInput{Name: "other", Email: "nick@mail.ru"}); !IsConflict(err) {
		t.Fatalf("duplicate email: expected Conflict, got %v", err)
	}
}

func TestUpdateUserPartialAndConflict(t *testing.T) {
	users := newFakeUsers()
	users.add(&models.User{Model: withID(1), Name: "nick", Email: "nick@mail.ru"})
	users.add(&models.User{Model: withID(2), Name: "fred", Email: "fred@mail.ru"})
	svc := NewUserService(users)

	name := "nikolai"
	updated, err := svc.Update(1, UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "nikolai" || updated.Email != "nick@mail.ru" {
		t.Fatalf("partial update went wrong: %+v", updated)
	}

	taken := "fred@mail.ru"
	if _, err := svc.Update(1, UpdateUserInput{Email: &taken}); !IsConflict(err) {
		t.Fatalf("taken email: expected Conflict, got %v", err)
	}

	if _, err := svc.Update(99, UpdateUserInput{Name: &name}); !IsNotFound(err) {
		t.Fatalf("unknown user: expected NotFound, got %v", err)
	}
}

func TestDeleteUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUsers())
	if err := svc.Delete(5); !IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
