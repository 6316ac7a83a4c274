package todo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/domain/valueobject"
)

// Todo list views.
const (
	TodoViewAll        = ""
	TodoViewToday      = "today"
	TodoViewUpcoming   = "upcoming"
	TodoViewCompleted  = "completed"
	TodoViewPrioritize = "prioritize"
)

// ListTodosInput represents the input for listing todos.
type ListTodosInput struct {
	UserID uuid.UUID
	View   string
}

// ListTodosOutput represents the output of listing todos.
type ListTodosOutput struct {
	Todos []*entity.TodoWithEffectivePriority
}

// ListTodosUseCase handles todo listing logic.
type ListTodosUseCase struct {
	todoRepo adapter.TodoRepository
	now      func() time.Time
}

// NewListTodosUseCase creates a new ListTodosUseCase instance.
func NewListTodosUseCase(todoRepo adapter.TodoRepository) *ListTodosUseCase {
	return &ListTodosUseCase{
		todoRepo: todoRepo,
		now:      time.Now,
	}
}

// Execute retrieves the user's todos for the requested view. Every todo is
// returned with its effective priority attached; the prioritize view
// additionally sorts by it, highest first.
func (uc *ListTodosUseCase) Execute(ctx context.Context, input ListTodosInput) (*ListTodosOutput, error) {
	now := uc.now()
	today := valueobject.NormalizeDay(now)

	filter := adapter.TodoFilter{UserID: input.UserID}
	notCompleted := false
	completed := true

	switch input.View {
	case TodoViewAll:
		// No additional constraints.
	case TodoViewToday:
		filter.DayStart = &today
		filter.DayEnd = &today
		filter.IsCompleted = &notCompleted
	case TodoViewUpcoming:
		tomorrow := today.AddDate(0, 0, 1)
		filter.DayStart = &tomorrow
		filter.IsCompleted = &notCompleted
	case TodoViewCompleted:
		filter.IsCompleted = &completed
	case TodoViewPrioritize:
		filter.IsCompleted = &notCompleted
	default:
		return nil, domainerror.NewTodoError(
			domainerror.ErrCodeInvalidTodoFilter,
			"filter must be 'today', 'upcoming', 'completed', or 'prioritize'",
			domainerror.ErrInvalidTodoFilter,
		)
	}

	todos, err := uc.todoRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	result := make([]*entity.TodoWithEffectivePriority, 0, len(todos))
	for _, t := range todos {
		result = append(result, &entity.TodoWithEffectivePriority{
			Todo:              t,
			EffectivePriority: EffectivePriority(t, now),
		})
	}

	if input.View == TodoViewPrioritize {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePriority > result[j].EffectivePriority
		})
	}

	return &ListTodosOutput{
		Todos: result,
	}, nil
}
