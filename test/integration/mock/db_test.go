package mock

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/integration/persistence/model"
)

func TestClearDBRemovesRowsAndTerminates(t *testing.T) {
	db := NewDb("mockdbtest", map[string]any{
		"users": &model.UserModel{},
	})

	user := &model.UserModel{
		ID:              uuid.New(),
		Email:           "cleanup@example.com",
		Name:            "Cleanup",
		PasswordHash:    "hash",
		TermsAcceptedAt: time.Now(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := db.DbConn.Create(user).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- db.ClearDB() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("ClearDB did not terminate")
	}

	var count int64
	if err := db.DbConn.Model(&model.UserModel{}).Count(&count).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty users table after clear, got %d rows", count)
	}
}
