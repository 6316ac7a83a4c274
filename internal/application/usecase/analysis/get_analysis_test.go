package analysis

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
)

type fakeHabitRepo struct {
	habits []*entity.Habit
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	r.habits = append(r.habits, habit)
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	for _, h := range r.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, context.Canceled
}

func (r *fakeHabitRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, _ *entity.Habit) error { return nil }

func (r *fakeHabitRepo) UpdateStreaks(_ context.Context, _ uuid.UUID, _, _ int) error { return nil }

func (r *fakeHabitRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeHabitLogRepo struct {
	logs []*entity.HabitLog
}

func (r *fakeHabitLogRepo) Upsert(_ context.Context, log *entity.HabitLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeHabitLogRepo) FindDoneDays(_ context.Context, habitID uuid.UUID) ([]time.Time, error) {
	var days []time.Time
	for _, l := range r.logs {
		if l.HabitID == habitID && l.Status == entity.HabitLogStatusDone {
			days = append(days, l.Day)
		}
	}
	return days, nil
}

func (r *fakeHabitLogRepo) FindByHabitAndRange(_ context.Context, habitID uuid.UUID, start, end time.Time) ([]*entity.HabitLog, error) {
	var out []*entity.HabitLog
	for _, l := range r.logs {
		if l.HabitID == habitID && !l.Day.Before(start) && !l.Day.After(end) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeHabitLogRepo) FindByUserAndDay(_ context.Context, userID uuid.UUID, day time.Time) ([]*entity.HabitLog, error) {
	var out []*entity.HabitLog
	for _, l := range r.logs {
		if l.UserID == userID && l.Day.Equal(day) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeTodoCounter struct {
	adapter.TodoRepository
	total     int64
	completed int64
}

func (r *fakeTodoCounter) CountByUserAndDay(_ context.Context, _ uuid.UUID, _, _ time.Time) (int64, int64, error) {
	return r.total, r.completed, nil
}

type fakeTransactionCounter struct {
	adapter.TransactionRepository
	credits int64
}

func (r *fakeTransactionCounter) CountByTypeAndRange(_ context.Context, _ uuid.UUID, _ entity.TransactionType, _, _ time.Time) (int64, error) {
	return r.credits, nil
}

type fakeJournalReader struct {
	adapter.JournalRepository
	latest *entity.JournalEntry
}

func (r *fakeJournalReader) FindMostRecent(_ context.Context, _ uuid.UUID) (*entity.JournalEntry, error) {
	return r.latest, nil
}

type fakeAnalysisRepo struct {
	snapshots map[string]*entity.CognitiveAnalysis
	upserts   int
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{snapshots: make(map[string]*entity.CognitiveAnalysis)}
}

func (r *fakeAnalysisRepo) Upsert(_ context.Context, analysis *entity.CognitiveAnalysis) error {
	r.upserts++
	key := analysis.UserID.String() + analysis.Day.Format("2006-01-02")
	r.snapshots[key] = analysis
	return nil
}

func (r *fakeAnalysisRepo) FindByUserAndDay(_ context.Context, userID uuid.UUID, day time.Time) (*entity.CognitiveAnalysis, error) {
	return r.snapshots[userID.String()+day.Format("2006-01-02")], nil
}

func (r *fakeAnalysisRepo) FindByUserAndRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CognitiveAnalysis, error) {
	var out []*entity.CognitiveAnalysis
	for _, snapshot := range r.snapshots {
		if snapshot.UserID != userID || snapshot.Day.Before(start) || snapshot.Day.After(end) {
			continue
		}
		out = append(out, snapshot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func setupGetAnalysis(t *testing.T, userID uuid.UUID) (*GetAnalysisUseCase, *fakeHabitRepo, *fakeHabitLogRepo, *fakeTodoCounter, *fakeTransactionCounter, *fakeJournalReader, *fakeAnalysisRepo) {
	t.Helper()

	habitRepo := &fakeHabitRepo{}
	logRepo := &fakeHabitLogRepo{}
	todoRepo := &fakeTodoCounter{}
	txRepo := &fakeTransactionCounter{}
	journalRepo := &fakeJournalReader{}
	analysisRepo := newFakeAnalysisRepo()

	uc := NewGetAnalysisUseCase(habitRepo, logRepo, todoRepo, txRepo, journalRepo, analysisRepo)
	uc.now = func() time.Time {
		return time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	}

	return uc, habitRepo, logRepo, todoRepo, txRepo, journalRepo, analysisRepo
}

func TestGetAnalysisPerfectDay(t *testing.T) {
	userID := uuid.New()
	uc, habitRepo, logRepo, todoRepo, txRepo, journalRepo, _ := setupGetAnalysis(t, userID)

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	habit := entity.NewHabit(userID, "meditate", entity.HabitFrequencyDaily, "health")
	habitRepo.habits = append(habitRepo.habits, habit)
	logRepo.logs = append(logRepo.logs, entity.NewHabitLog(habit.ID, userID, day, entity.HabitLogStatusDone))

	todoRepo.total = 2
	todoRepo.completed = 2
	txRepo.credits = 3
	journalRepo.latest = &entity.JournalEntry{Content: "a great win today, love it"}

	output, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	a := output.Analysis
	if a.MoodScore != 85 {
		t.Errorf("MoodScore = %v, want 85", a.MoodScore)
	}
	if a.ProductivityScore != 100 {
		t.Errorf("ProductivityScore = %v, want 100", a.ProductivityScore)
	}
	if a.FinancialStabilityScore != 80 {
		t.Errorf("FinancialStabilityScore = %v, want 80", a.FinancialStabilityScore)
	}
	if a.StressLevel != 10 {
		t.Errorf("StressLevel = %v, want 10", a.StressLevel)
	}
	if a.ResilienceScore != 88.75 {
		t.Errorf("ResilienceScore = %v, want 88.75", a.ResilienceScore)
	}
	if !a.Day.Equal(day) {
		t.Errorf("Day = %v, want %v", a.Day, day)
	}
	if len(a.Indicators) != 0 {
		t.Errorf("Indicators = %v, want none", a.Indicators)
	}
}

func TestGetAnalysisNoDataDefaults(t *testing.T) {
	userID := uuid.New()
	uc, _, _, _, _, _, _ := setupGetAnalysis(t, userID)

	output, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	a := output.Analysis
	if a.MoodScore != 60 {
		t.Errorf("MoodScore = %v, want 60 for missing journal", a.MoodScore)
	}
	if a.ProductivityScore != 0 {
		t.Errorf("ProductivityScore = %v, want 0 for no habits and no todos", a.ProductivityScore)
	}
	if a.FinancialStabilityScore != 40 {
		t.Errorf("FinancialStabilityScore = %v, want 40 for zero credits", a.FinancialStabilityScore)
	}
	if a.StressLevel != 50 {
		t.Errorf("StressLevel = %v, want 50", a.StressLevel)
	}

	wantIndicators := map[string]bool{"financial_dip": true, "low_productivity": true, "high_stress": true}
	if len(a.Indicators) != len(wantIndicators) {
		t.Fatalf("Indicators = %v, want %v", a.Indicators, wantIndicators)
	}
	for _, ind := range a.Indicators {
		if !wantIndicators[ind] {
			t.Errorf("unexpected indicator %q", ind)
		}
	}
}

func TestGetAnalysisUpsertsOneSnapshotPerDay(t *testing.T) {
	userID := uuid.New()
	uc, _, _, todoRepo, txRepo, _, analysisRepo := setupGetAnalysis(t, userID)
	txRepo.credits = 1

	if _, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID}); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}

	todoRepo.total = 1
	todoRepo.completed = 1

	output, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID})
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}

	if analysisRepo.upserts != 2 {
		t.Errorf("upserts = %d, want 2", analysisRepo.upserts)
	}
	if len(analysisRepo.snapshots) != 1 {
		t.Fatalf("stored snapshots = %d, want exactly 1", len(analysisRepo.snapshots))
	}

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	stored, _ := analysisRepo.FindByUserAndDay(context.Background(), userID, day)
	if stored == nil {
		t.Fatal("snapshot for today not found")
	}
	if stored.ProductivityScore != output.Analysis.ProductivityScore {
		t.Errorf("stored ProductivityScore = %v, want the second call's %v", stored.ProductivityScore, output.Analysis.ProductivityScore)
	}
	if stored.ProductivityScore != 50 {
		t.Errorf("ProductivityScore = %v, want 50 after completing the only todo", stored.ProductivityScore)
	}
}

func TestGetAnalysisHabitRatioCountsOnlyDone(t *testing.T) {
	userID := uuid.New()
	uc, habitRepo, logRepo, _, txRepo, _, _ := setupGetAnalysis(t, userID)
	txRepo.credits = 1

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	done := entity.NewHabit(userID, "run", entity.HabitFrequencyDaily, "health")
	skipped := entity.NewHabit(userID, "read", entity.HabitFrequencyDaily, "growth")
	untouched := entity.NewHabit(userID, "write", entity.HabitFrequencyDaily, "growth")
	habitRepo.habits = append(habitRepo.habits, done, skipped, untouched)

	logRepo.logs = append(logRepo.logs,
		entity.NewHabitLog(done.ID, userID, day, entity.HabitLogStatusDone),
		entity.NewHabitLog(skipped.ID, userID, day, entity.HabitLogStatusNone),
	)

	output, err := uc.Execute(context.Background(), GetAnalysisInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// 1 done of 3 habits, no todos: productivity = (33.333 + 0) / 2.
	if output.Analysis.ProductivityScore != 16.667 {
		t.Errorf("ProductivityScore = %v, want 16.667", output.Analysis.ProductivityScore)
	}
}
