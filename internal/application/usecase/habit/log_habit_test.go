// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

var errNotFound = errors.New("not found")

// fakeHabitRepo is an in-memory adapter.HabitRepository for tests.
type fakeHabitRepo struct {
	habits map[uuid.UUID]*entity.Habit
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: make(map[uuid.UUID]*entity.Habit)}
}

func (r *fakeHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	r.habits[h.ID] = h
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	h, ok := r.habits[id]
	if !ok {
		return nil, errNotFound
	}
	return h, nil
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

func (r *fakeHabitRepo) Update(_ context.Context, h *entity.Habit) error {
	r.habits[h.ID] = h
	return nil
}

func (r *fakeHabitRepo) UpdateStreaks(_ context.Context, id uuid.UUID, current, best int) error {
	h := r.habits[id]
	h.CurrentStreak = current
	h.BestStreak = best
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.habits, id)
	return nil
}

// fakeLogRepo is an in-memory adapter.HabitLogRepository keyed by (habit, day).
type fakeLogRepo struct {
	logs map[uuid.UUID]map[time.Time]*entity.HabitLog
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{logs: make(map[uuid.UUID]map[time.Time]*entity.HabitLog)}
}

func (r *fakeLogRepo) Upsert(_ context.Context, l *entity.HabitLog) error {
	if r.logs[l.HabitID] == nil {
		r.logs[l.HabitID] = make(map[time.Time]*entity.HabitLog)
	}
	r.logs[l.HabitID][l.Day] = l
	return nil
}

func (r *fakeLogRepo) FindDoneDays(_ context.Context, habitID uuid.UUID) ([]time.Time, error) {
	var out []time.Time
	for day, l := range r.logs[habitID] {
		if l.Status == entity.HabitLogStatusDone {
			out = append(out, day)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) FindByHabitAndRange(_ context.Context, habitID uuid.UUID, start, end time.Time) ([]*entity.HabitLog, error) {
	var out []*entity.HabitLog
	for day, l := range r.logs[habitID] {
		if !day.Before(start) && !day.After(end) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) FindByUserAndDay(_ context.Context, userID uuid.UUID, day time.Time) ([]*entity.HabitLog, error) {
	var out []*entity.HabitLog
	for _, byDay := range r.logs {
		if l, ok := byDay[day]; ok && l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// fakeUserRepo provides the minimum surface LogHabitUseCase touches.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) AddXP(_ context.Context, id uuid.UUID, amount int) (int, error) {
	r.users[id].XP += amount
	return r.users[id].XP, nil
}

func (r *fakeUserRepo) TopByXP(_ context.Context, limit int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

// fakeEmailService records queued milestone emails.
type fakeEmailService struct {
	milestones []adapter.QueueStreakMilestoneInput
}

func (s *fakeEmailService) QueuePasswordResetEmail(_ context.Context, _ adapter.QueuePasswordResetInput) error {
	return nil
}

func (s *fakeEmailService) QueueStreakMilestoneEmail(_ context.Context, input adapter.QueueStreakMilestoneInput) error {
	s.milestones = append(s.milestones, input)
	return nil
}

func setupLogHabit(t *testing.T) (*LogHabitUseCase, *fakeHabitRepo, *fakeLogRepo, *fakeEmailService, *entity.Habit, time.Time) {
	t.Helper()

	habitRepo := newFakeHabitRepo()
	logRepo := newFakeLogRepo()
	userRepo := newFakeUserRepo()
	emails := &fakeEmailService{}

	user := entity.NewUser("ada@example.com", "Ada", "hash", time.Now())
	_ = userRepo.Create(context.Background(), user)

	habit := entity.NewHabit(user.ID, "Morning run", entity.HabitFrequencyDaily, "health")
	_ = habitRepo.Create(context.Background(), habit)

	uc := NewLogHabitUseCase(habitRepo, logRepo, userRepo, emails)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	uc.now = func() time.Time { return now }

	return uc, habitRepo, logRepo, emails, habit, now
}

func TestLogHabitUseCase_Execute(t *testing.T) {
	t.Run("first done log today yields streak 1", func(t *testing.T) {
		uc, habitRepo, _, _, habit, _ := setupLogHabit(t)

		out, err := uc.Execute(context.Background(), LogHabitInput{
			UserID:  habit.UserID,
			HabitID: habit.ID,
			Status:  entity.HabitLogStatusDone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CurrentStreak != 1 || out.BestStreak != 1 {
			t.Errorf("expected streaks {1,1}, got {%d,%d}", out.CurrentStreak, out.BestStreak)
		}
		if habitRepo.habits[habit.ID].CurrentStreak != 1 {
			t.Error("expected cached current streak to be persisted")
		}
	})

	t.Run("re-logging the same day is idempotent", func(t *testing.T) {
		uc, _, logRepo, _, habit, _ := setupLogHabit(t)

		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(context.Background(), LogHabitInput{
				UserID:  habit.UserID,
				HabitID: habit.ID,
				Status:  entity.HabitLogStatusDone,
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if got := len(logRepo.logs[habit.ID]); got != 1 {
			t.Errorf("expected a single log row, got %d", got)
		}
	})

	t.Run("done then none then done keeps a single counted day", func(t *testing.T) {
		uc, _, _, _, habit, _ := setupLogHabit(t)

		for _, status := range []entity.HabitLogStatus{
			entity.HabitLogStatusDone,
			entity.HabitLogStatusNone,
			entity.HabitLogStatusDone,
		} {
			out, err := uc.Execute(context.Background(), LogHabitInput{
				UserID:  habit.UserID,
				HabitID: habit.ID,
				Status:  status,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status == entity.HabitLogStatusDone && out.CurrentStreak != 1 {
				t.Errorf("expected streak 1 after done, got %d", out.CurrentStreak)
			}
			if status == entity.HabitLogStatusNone && out.CurrentStreak != 0 {
				t.Errorf("expected streak 0 after none, got %d", out.CurrentStreak)
			}
		}
	})

	t.Run("stored best streak is never lowered", func(t *testing.T) {
		uc, habitRepo, _, _, habit, _ := setupLogHabit(t)
		habitRepo.habits[habit.ID].BestStreak = 9

		out, err := uc.Execute(context.Background(), LogHabitInput{
			UserID:  habit.UserID,
			HabitID: habit.ID,
			Status:  entity.HabitLogStatusDone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.BestStreak != 9 {
			t.Errorf("expected best streak to hold at 9, got %d", out.BestStreak)
		}
	})

	t.Run("backfilled history builds a multi-day streak", func(t *testing.T) {
		uc, _, _, _, habit, now := setupLogHabit(t)

		for offset := -2; offset <= 0; offset++ {
			date := now.AddDate(0, 0, offset)
			if _, err := uc.Execute(context.Background(), LogHabitInput{
				UserID:  habit.UserID,
				HabitID: habit.ID,
				Status:  entity.HabitLogStatusDone,
				Date:    &date,
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		out, err := uc.Execute(context.Background(), LogHabitInput{
			UserID:  habit.UserID,
			HabitID: habit.ID,
			Status:  entity.HabitLogStatusDone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CurrentStreak != 3 {
			t.Errorf("expected streak 3, got %d", out.CurrentStreak)
		}
	})

	t.Run("milestone email queued at streak 7", func(t *testing.T) {
		uc, _, logRepo, emails, habit, now := setupLogHabit(t)

		// Seed six prior consecutive done days directly.
		for offset := -6; offset < 0; offset++ {
			day := valueobject.NormalizeDay(now.AddDate(0, 0, offset))
			_ = logRepo.Upsert(context.Background(), entity.NewHabitLog(habit.ID, habit.UserID, day, entity.HabitLogStatusDone))
		}

		out, err := uc.Execute(context.Background(), LogHabitInput{
			UserID:  habit.UserID,
			HabitID: habit.ID,
			Status:  entity.HabitLogStatusDone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CurrentStreak != 7 {
			t.Fatalf("expected streak 7, got %d", out.CurrentStreak)
		}
		if len(emails.milestones) != 1 {
			t.Fatalf("expected one milestone email, got %d", len(emails.milestones))
		}
		if emails.milestones[0].Streak != 7 || emails.milestones[0].HabitName != habit.Name {
			t.Errorf("unexpected milestone email payload: %+v", emails.milestones[0])
		}
	})

	t.Run("milestone email not repeated when streak already reached it", func(t *testing.T) {
		uc, _, logRepo, emails, habit, now := setupLogHabit(t)

		// Today and the six days before are already done; the cached streak
		// reflects that.
		for offset := -6; offset <= 0; offset++ {
			day := valueobject.NormalizeDay(now.AddDate(0, 0, offset))
			_ = logRepo.Upsert(context.Background(), entity.NewHabitLog(habit.ID, habit.UserID, day, entity.HabitLogStatusDone))
		}
		habit.CurrentStreak = 7
		habit.BestStreak = 7

		out, err := uc.Execute(context.Background(), LogHabitInput{
			UserID:  habit.UserID,
			HabitID: habit.ID,
			Status:  entity.HabitLogStatusDone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CurrentStreak != 7 {
			t.Fatalf("expected streak 7, got %d", out.CurrentStreak)
		}
		if len(emails.milestones) != 0 {
			t.Fatalf("expected no milestone email, got %d", len(emails.milestones))
		}
	})

	t.Run("rejects habit owned by another user", func(t *testing.T) {
		uc, _, _, _, habit, _ := setupLogHabit(t)

		_, err := uc.Execute(context.Background(), LogHabitInput{
			UserID:  uuid.New(),
			HabitID: habit.ID,
			Status:  entity.HabitLogStatusDone,
		})
		if err == nil {
			t.Fatal("expected an error for foreign habit")
		}
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		uc, _, _, _, habit, _ := setupLogHabit(t)

		_, err := uc.Execute(context.Background(), LogHabitInput{
			UserID:  habit.UserID,
			HabitID: habit.ID,
			Status:  entity.HabitLogStatus("skipped"),
		})
		if err == nil {
			t.Fatal("expected an error for invalid status")
		}
	})
}
