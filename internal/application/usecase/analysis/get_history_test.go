package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/domain/entity"
)

func seedSnapshot(repo *fakeAnalysisRepo, userID uuid.UUID, day time.Time) {
	snapshot := entity.NewCognitiveAnalysis(userID, day)
	_ = repo.Upsert(context.Background(), snapshot)
}

func TestGetHistoryDefaultsToTrailingMonth(t *testing.T) {
	userID := uuid.New()
	repo := newFakeAnalysisRepo()

	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	seedSnapshot(repo, userID, today)
	seedSnapshot(repo, userID, today.AddDate(0, 0, -10))
	seedSnapshot(repo, userID, today.AddDate(0, 0, -45)) // outside the window
	seedSnapshot(repo, uuid.New(), today)                // someone else's

	uc := NewGetHistoryUseCase(repo)
	uc.now = func() time.Time { return time.Date(2025, 6, 15, 9, 30, 0, 0, time.Local) }

	out, err := uc.Execute(context.Background(), GetHistoryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(out.Snapshots))
	}
	if !out.Snapshots[0].Day.Before(out.Snapshots[1].Day) {
		t.Errorf("expected snapshots oldest first, got %v then %v", out.Snapshots[0].Day, out.Snapshots[1].Day)
	}
}

func TestGetHistoryExplicitRange(t *testing.T) {
	userID := uuid.New()
	repo := newFakeAnalysisRepo()

	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	seedSnapshot(repo, userID, today)
	seedSnapshot(repo, userID, today.AddDate(0, 0, -3))
	seedSnapshot(repo, userID, today.AddDate(0, 0, -8))

	uc := NewGetHistoryUseCase(repo)
	uc.now = func() time.Time { return today }

	start := today.AddDate(0, 0, -5)
	end := today.AddDate(0, 0, -1)
	out, err := uc.Execute(context.Background(), GetHistoryInput{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Snapshots) != 1 {
		t.Fatalf("expected 1 snapshot in range, got %d", len(out.Snapshots))
	}
	if !out.Snapshots[0].Day.Equal(today.AddDate(0, 0, -3)) {
		t.Errorf("unexpected snapshot day: %v", out.Snapshots[0].Day)
	}
}
