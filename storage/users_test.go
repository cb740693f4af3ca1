package storage

import (
	"errors"
	"testing"

	"github.com/BelkinSergey/shareit-server/services"
	"gorm.io/gorm"
)

func TestDuplicateKeyBecomesConflict(t *testing.T) {
	if !services.IsConflict(translateUserError(gorm.ErrDuplicatedKey)) {
		t.Fatal("expected a duplicate key violation to map to Conflict")
	}
}

func TestOtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection reset")
	if got := translateUserError(boom); got != boom {
		t.Fatalf("expected the error unchanged, got %v", got)
	}
	if translateUserError(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}
