// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// streakMilestones are the streak lengths that trigger a congratulation email.
var streakMilestones = map[int]bool{7: true, 30: true, 100: true}

// LogHabitInput represents the input for logging a habit for one day.
type LogHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	Status  entity.HabitLogStatus
	Date    *time.Time // Optional, defaults to now
}

// LogHabitOutput represents the output of logging a habit.
type LogHabitOutput struct {
	CurrentStreak int
	BestStreak    int
}

// LogHabitUseCase handles the per-day habit log toggle and the streak
// recompute that keeps the habit's cached counters in sync with its log
// history. The recompute always re-reads the full history, so it is
// self-correcting regardless of the order concurrent writes land in.
type LogHabitUseCase struct {
	habitRepo    adapter.HabitRepository
	logRepo      adapter.HabitLogRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService // Optional; nil disables milestone emails
	now          func() time.Time
}

// NewLogHabitUseCase creates a new LogHabitUseCase instance.
func NewLogHabitUseCase(
	habitRepo adapter.HabitRepository,
	logRepo adapter.HabitLogRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *LogHabitUseCase {
	return &LogHabitUseCase{
		habitRepo:    habitRepo,
		logRepo:      logRepo,
		userRepo:     userRepo,
		emailService: emailService,
		now:          time.Now,
	}
}

// Execute performs the habit log toggle and streak recompute.
func (uc *LogHabitUseCase) Execute(ctx context.Context, input LogHabitInput) (*LogHabitOutput, error) {
	if input.Status != entity.HabitLogStatusDone && input.Status != entity.HabitLogStatusNone {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidLogStatus,
			"status must be 'done' or 'none'",
			domainerror.ErrInvalidLogStatus,
		)
	}

	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	if habit.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeUnauthorizedHabit,
			"habit does not belong to user",
			domainerror.ErrUnauthorizedHabitAccess,
		)
	}

	when := uc.now()
	if input.Date != nil {
		when = *input.Date
	}
	day := valueobject.NormalizeDay(when)

	log := entity.NewHabitLog(habit.ID, input.UserID, day, input.Status)
	if err := uc.logRepo.Upsert(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to upsert habit log: %w", err)
	}

	doneDays, err := uc.logRepo.FindDoneDays(ctx, habit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit log history: %w", err)
	}

	streaks := ComputeStreaks(doneDays, uc.now())

	// A later data correction that removes old logs must never erase a
	// historical best.
	best := streaks.Best
	if habit.BestStreak > best {
		best = habit.BestStreak
	}

	// The repository may hand back the same entity UpdateStreaks mutates, so
	// the pre-update streak has to be captured here.
	previousStreak := habit.CurrentStreak

	if err := uc.habitRepo.UpdateStreaks(ctx, habit.ID, streaks.Current, best); err != nil {
		return nil, fmt.Errorf("failed to update habit streaks: %w", err)
	}

	uc.maybeQueueMilestoneEmail(ctx, habit, previousStreak, streaks.Current)

	return &LogHabitOutput{
		CurrentStreak: streaks.Current,
		BestStreak:    best,
	}, nil
}

// maybeQueueMilestoneEmail queues a congratulation email when the streak has
// just reached a milestone. Failures are logged and swallowed: the log toggle
// must not fail because of the email queue.
func (uc *LogHabitUseCase) maybeQueueMilestoneEmail(ctx context.Context, habit *entity.Habit, previousStreak, newStreak int) {
	if uc.emailService == nil || !streakMilestones[newStreak] || newStreak <= previousStreak {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, habit.UserID)
	if err != nil || !user.StreakReminders {
		return
	}

	err = uc.emailService.QueueStreakMilestoneEmail(ctx, adapter.QueueStreakMilestoneInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		HabitName: habit.Name,
		Streak:    newStreak,
	})
	if err != nil {
		slog.Warn("Failed to queue streak milestone email",
			"habit_id", habit.ID,
			"streak", newStreak,
			"error", err,
		)
	}
}
