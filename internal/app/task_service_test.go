package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/mocks"
)

func TestNewTaskService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(mocks.NewMockStore(t), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewTaskService(nil logger) should create a no-op logger, got nil")
	}
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	tk, err := h.tasks.CreateTask(context.Background(), "Write docs", "")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if tk.Status != task.StatusTodo {
		t.Errorf("Status = %q, want todo", tk.Status)
	}
	requireEvents(t, h.drain(), event.TaskCreated(tk.ID))

	if _, err := h.tasks.CreateTask(context.Background(), "x", "finished"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateTask(bad status) error = %v, want ErrValidation", err)
	}
	requireEvents(t, h.drain())
}

func TestTaskService_EditTask(t *testing.T) {
	t.Parallel()

	t.Run("applies status, description and due date", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		tk, _ := h.tasks.CreateTask(ctx, "T", "")
		h.drain()

		got, err := h.tasks.EditTask(ctx, tk.ID, task.Edit{
			Status:      domain.Some("complete"),
			Description: domain.Some("notes"),
			DueDate:     domain.Some("2025-12-24"),
		})
		if err != nil {
			t.Fatalf("EditTask() error = %v", err)
		}
		want := task.Date{Year: 2025, Month: time.December, Day: 24}
		if got.Status != task.StatusComplete || got.DueDate == nil || *got.DueDate != want {
			t.Errorf("EditTask() = %+v", got)
		}
		if got.Title != "T" {
			t.Errorf("Title = %q, want T kept", got.Title)
		}
		requireEvents(t, h.drain(), event.TaskUpdated(tk.ID))
	})

	t.Run("invalid status is rejected without event", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		tk, _ := h.tasks.CreateTask(ctx, "T", "")
		h.drain()

		_, err := h.tasks.EditTask(ctx, tk.ID, task.Edit{Status: domain.Some("done")})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("EditTask() error = %v, want ErrValidation", err)
		}
		requireEvents(t, h.drain())
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		_, err := h.tasks.EditTask(context.Background(), uuid.New(), task.Edit{Title: domain.Some("x")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("EditTask() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTaskService_ClearFields(t *testing.T) {
	t.Parallel()

	t.Run("clears only the named fields", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		tk, _ := h.tasks.CreateTask(ctx, "T", "")
		_, err := h.tasks.EditTask(ctx, tk.ID, task.Edit{
			Description: domain.Some("notes"),
			DueDate:     domain.Some("2025-01-02"),
		})
		if err != nil {
			t.Fatalf("EditTask() error = %v", err)
		}
		h.drain()

		got, err := h.tasks.ClearFields(ctx, tk.ID, []task.ClearableField{task.ClearDescription})
		if err != nil {
			t.Fatalf("ClearFields() error = %v", err)
		}
		if got.Description != nil {
			t.Errorf("Description = %v, want nil", *got.Description)
		}
		if got.DueDate == nil {
			t.Error("DueDate = nil, want kept")
		}
		requireEvents(t, h.drain(), event.TaskUpdated(tk.ID))
	})

	t.Run("empty field list is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(mocks.NewMockStore(t), nil, discardLogger())

		if _, err := svc.ClearFields(context.Background(), uuid.New(), nil); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ClearFields() error = %v, want ErrValidation", err)
		}
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	p, _ := h.projects.CreateProject(ctx, "P")
	tk, _ := h.projects.CreateTaskInProject(ctx, p.ID, "T", "")
	h.drain()

	if err := h.tasks.DeleteTask(ctx, tk.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	requireEvents(t, h.drain(), event.TaskDestroyed(tk.ID))

	if _, err := h.projects.GetProject(ctx, p.ID); err != nil {
		t.Errorf("GetProject() after task delete error = %v, want project kept", err)
	}
	tasks, err := h.projects.ProjectTasks(ctx, p.ID)
	if err != nil || len(tasks) != 0 {
		t.Errorf("ProjectTasks() = %v, %v, want none", tasks, err)
	}

	if err := h.tasks.DeleteTask(ctx, tk.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteTask(again) error = %v, want ErrNotFound", err)
	}
	requireEvents(t, h.drain())
}

func TestTaskService_SearchTasks(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	first, _ := h.tasks.CreateTask(ctx, "Fix login bug", "")
	second, _ := h.tasks.CreateTask(ctx, "Write release notes", "")
	third, _ := h.tasks.CreateTask(ctx, "Triage", "")
	if _, err := h.tasks.EditTask(ctx, third.ID, task.Edit{Description: domain.Some("the BUG backlog")}); err != nil {
		t.Fatalf("EditTask() error = %v", err)
	}

	got, err := h.tasks.SearchTasks(ctx, "bug")
	if err != nil {
		t.Fatalf("SearchTasks() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != third.ID || got[1].ID != first.ID {
		t.Errorf("SearchTasks(bug) = %+v, want [third, first]", got)
	}

	all, _ := h.tasks.SearchTasks(ctx, "")
	if len(all) != 3 || all[1].ID != second.ID {
		t.Errorf("SearchTasks(\"\") = %+v, want all three newest first", all)
	}
}

func TestTaskService_TaskProjects(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	a, _ := h.projects.CreateProject(ctx, "A")
	b, _ := h.projects.CreateProject(ctx, "B")
	tk, _ := h.tasks.CreateTask(ctx, "T", "")
	for _, p := range []uuid.UUID{b.ID, a.ID} {
		if err := h.projects.AddTask(ctx, p, tk.ID); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
	}

	got, err := h.tasks.TaskProjects(ctx, tk.ID)
	if err != nil {
		t.Fatalf("TaskProjects() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Errorf("TaskProjects() = %+v, want [A, B] oldest first", got)
	}

	if _, err := h.tasks.TaskProjects(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("TaskProjects(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestTaskService_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStore(t)
	svc := NewTaskService(store, nil, discardLogger())

	dbErr := errors.New("database is locked")
	store.EXPECT().FindTasks(mock.Anything, mock.Anything).Return(nil, dbErr)

	if _, err := svc.SearchTasks(context.Background(), "x"); !errors.Is(err, dbErr) {
		t.Errorf("SearchTasks() error = %v, want %v", err, dbErr)
	}
}
