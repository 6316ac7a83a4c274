package todo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/adapter"
	"github.com/kairos-app/backend/internal/domain/entity"
)

var errNotFound = errors.New("not found")

type fakeTodoRepo struct {
	todos      []*entity.Todo
	lastFilter adapter.TodoFilter
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *entity.Todo) error {
	r.todos = append(r.todos, todo)
	return nil
}

func (r *fakeTodoRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Todo, error) {
	for _, t := range r.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeTodoRepo) FindByFilter(_ context.Context, filter adapter.TodoFilter) ([]*entity.Todo, error) {
	r.lastFilter = filter

	var out []*entity.Todo
	for _, t := range r.todos {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.IsCompleted != nil && t.IsCompleted != *filter.IsCompleted {
			continue
		}
		if filter.DayStart != nil && t.Date.Before(*filter.DayStart) {
			continue
		}
		if filter.DayEnd != nil && t.Date.After(*filter.DayEnd) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTodoRepo) CountByUserAndDay(_ context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (int64, int64, error) {
	var total, completed int64
	for _, t := range r.todos {
		if t.UserID != userID || t.Date.Before(dayStart) || t.Date.After(dayEnd) {
			continue
		}
		total++
		if t.IsCompleted {
			completed++
		}
	}
	return total, completed, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, _ *entity.Todo) error { return nil }

func (r *fakeTodoRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func TestListTodosPrioritizeSortsByEffectivePriority(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	userID := uuid.New()

	deadline := func(d time.Duration) *time.Time {
		dl := now.Add(d)
		return &dl
	}

	repo := &fakeTodoRepo{todos: []*entity.Todo{
		{ID: uuid.New(), UserID: userID, Title: "far out", Date: now, Priority: 6, Deadline: deadline(30 * 24 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Title: "overdue", Date: now, Priority: 2, Deadline: deadline(-time.Hour)},
		{ID: uuid.New(), UserID: userID, Title: "due tomorrow", Date: now, Priority: 3, Deadline: deadline(20 * time.Hour)},
		{ID: uuid.New(), UserID: userID, Title: "no deadline", Date: now, Priority: 5},
	}}

	uc := NewListTodosUseCase(repo)
	uc.now = func() time.Time { return now }

	output, err := uc.Execute(context.Background(), ListTodosInput{UserID: userID, View: TodoViewPrioritize})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Todos) != 4 {
		t.Fatalf("expected 4 todos, got %d", len(output.Todos))
	}

	wantOrder := []string{"overdue", "due tomorrow", "far out", "no deadline"}
	wantEffective := []int{10, 9, 6, 5}
	for i, item := range output.Todos {
		if item.Todo.Title != wantOrder[i] {
			t.Errorf("position %d: got %q, want %q", i, item.Todo.Title, wantOrder[i])
		}
		if item.EffectivePriority != wantEffective[i] {
			t.Errorf("position %d: effective priority = %d, want %d", i, item.EffectivePriority, wantEffective[i])
		}
	}

	for _, item := range output.Todos {
		if item.Todo.Priority == item.EffectivePriority {
			continue
		}
		if item.Todo.Priority > item.EffectivePriority {
			t.Errorf("todo %q: stored priority %d was lowered to %d", item.Todo.Title, item.Todo.Priority, item.EffectivePriority)
		}
	}
}

func TestListTodosTodayFiltersToCurrentDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.Local)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	userID := uuid.New()

	repo := &fakeTodoRepo{todos: []*entity.Todo{
		{ID: uuid.New(), UserID: userID, Title: "today open", Date: today, Priority: 5},
		{ID: uuid.New(), UserID: userID, Title: "today done", Date: today, Priority: 5, IsCompleted: true},
		{ID: uuid.New(), UserID: userID, Title: "tomorrow", Date: today.AddDate(0, 0, 1), Priority: 5},
		{ID: uuid.New(), UserID: uuid.New(), Title: "other user", Date: today, Priority: 5},
	}}

	uc := NewListTodosUseCase(repo)
	uc.now = func() time.Time { return now }

	output, err := uc.Execute(context.Background(), ListTodosInput{UserID: userID, View: TodoViewToday})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(output.Todos))
	}
	if output.Todos[0].Todo.Title != "today open" {
		t.Errorf("got %q, want %q", output.Todos[0].Todo.Title, "today open")
	}
}

func TestListTodosRejectsUnknownView(t *testing.T) {
	uc := NewListTodosUseCase(&fakeTodoRepo{})

	_, err := uc.Execute(context.Background(), ListTodosInput{UserID: uuid.New(), View: "someday"})
	if err == nil {
		t.Fatal("expected error for unknown view, got nil")
	}
}
