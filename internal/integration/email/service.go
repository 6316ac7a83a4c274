// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Kairos"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueStreakMilestoneEmail queues a streak milestone congratulation email.
func (s *Service) QueueStreakMilestoneEmail(ctx context.Context, input adapter.QueueStreakMilestoneInput) error {
	subject := fmt.Sprintf("%d day streak on %s - Kairos", input.Streak, input.HabitName)

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"habit_name": input.HabitName,
		"streak":     input.Streak,
		"app_url":    s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateStreakMilestone,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue streak milestone email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
