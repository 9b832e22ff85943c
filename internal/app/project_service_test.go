package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-tracker/internal/app/feed"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/mocks"
)

// --- NewProjectService ---

func TestNewProjectService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(mocks.NewMockStore(t), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewProjectService(nil logger) should create a no-op logger, got nil")
	}
}

// --- CreateProject / EditProject / DeleteProject ---

func TestProjectService_CreateProject(t *testing.T) {
	t.Parallel()

	t.Run("stores project and publishes Create", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		p, err := h.projects.CreateProject(context.Background(), "Launch")
		if err != nil {
			t.Fatalf("CreateProject() error = %v", err)
		}
		if p.Title != "Launch" || p.ID == uuid.Nil || p.CreatedAt.IsZero() {
			t.Errorf("CreateProject() = %+v", p)
		}
		requireEvents(t, h.drain(), event.ProjectCreated(p.ID))
	})

	t.Run("blank title is rejected without event", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		_, err := h.projects.CreateProject(context.Background(), "  ")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateProject() error = %v, want ErrValidation", err)
		}
		requireEvents(t, h.drain())
	})

	t.Run("store error is returned without event", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		pub := mocks.NewMockEventPublisher(t)
		svc := NewProjectService(store, pub, discardLogger())

		dbErr := errors.New("disk full")
		store.EXPECT().InsertProject(mock.Anything, mock.Anything).Return(nil, dbErr)

		if _, err := svc.CreateProject(context.Background(), "P"); !errors.Is(err, dbErr) {
			t.Errorf("CreateProject() error = %v, want %v", err, dbErr)
		}
	})
}

func TestProjectService_EditProject(t *testing.T) {
	t.Parallel()

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		p, _ := h.projects.CreateProject(ctx, "Draft")
		_, err := h.projects.EditProject(ctx, p.ID, project.Edit{Description: domain.Some("about")})
		if err != nil {
			t.Fatalf("EditProject() error = %v", err)
		}
		h.drain()

		got, err := h.projects.EditProject(ctx, p.ID, project.Edit{Title: domain.Some("Final")})
		if err != nil {
			t.Fatalf("EditProject() error = %v", err)
		}
		if got.Title != "Final" || got.Description == nil || *got.Description != "about" {
			t.Errorf("EditProject() = %+v, want title Final and description kept", got)
		}
		requireEvents(t, h.drain(), event.ProjectUpdated(p.ID))
	})

	t.Run("null title is a validation error", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		p, _ := h.projects.CreateProject(ctx, "Draft")
		h.drain()

		_, err := h.projects.EditProject(ctx, p.ID, project.Edit{Title: domain.Null[string]()})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("EditProject() error = %v, want ErrValidation", err)
		}
		requireEvents(t, h.drain())
	})

	t.Run("unknown project is not found", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		_, err := h.projects.EditProject(context.Background(), uuid.New(), project.Edit{Title: domain.Some("x")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("EditProject() error = %v, want ErrNotFound", err)
		}
		requireEvents(t, h.drain())
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	t.Parallel()

	t.Run("removes associations but keeps tasks", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		p, _ := h.projects.CreateProject(ctx, "P")
		tk, err := h.projects.CreateTaskInProject(ctx, p.ID, "T", "")
		if err != nil {
			t.Fatalf("CreateTaskInProject() error = %v", err)
		}
		h.drain()

		if err := h.projects.DeleteProject(ctx, p.ID); err != nil {
			t.Fatalf("DeleteProject() error = %v", err)
		}
		requireEvents(t, h.drain(), event.ProjectDestroyed(p.ID))

		if _, err := h.tasks.GetTask(ctx, tk.ID); err != nil {
			t.Errorf("GetTask() after project delete error = %v, want task kept", err)
		}
		projects, err := h.tasks.TaskProjects(ctx, tk.ID)
		if err != nil || len(projects) != 0 {
			t.Errorf("TaskProjects() = %v, %v, want none", projects, err)
		}
	})

	t.Run("unknown project is not found without event", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)

		err := h.projects.DeleteProject(context.Background(), uuid.New())
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DeleteProject() error = %v, want ErrNotFound", err)
		}
		requireEvents(t, h.drain())
	})
}

// --- Membership ---

func TestProjectService_CreateTaskInProject(t *testing.T) {
	t.Parallel()

	t.Run("creates, associates and publishes both events", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		p, _ := h.projects.CreateProject(ctx, "P")
		h.drain()

		tk, err := h.projects.CreateTaskInProject(ctx, p.ID, "T", task.StatusInProgress)
		if err != nil {
			t.Fatalf("CreateTaskInProject() error = %v", err)
		}
		if tk.Status != task.StatusInProgress {
			t.Errorf("Status = %q, want in_progress", tk.Status)
		}
		requireEvents(t, h.drain(), event.TaskCreated(tk.ID), event.ProjectUpdated(p.ID))

		tasks, err := h.projects.ProjectTasks(ctx, p.ID)
		if err != nil || len(tasks) != 1 || tasks[0].ID != tk.ID {
			t.Errorf("ProjectTasks() = %v, %v, want [%v]", tasks, err, tk.ID)
		}
	})

	t.Run("unknown project writes nothing", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		_, err := h.projects.CreateTaskInProject(ctx, uuid.New(), "T", "")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("CreateTaskInProject() error = %v, want ErrNotFound", err)
		}
		requireEvents(t, h.drain())

		tasks, _ := h.tasks.SearchTasks(ctx, "")
		if len(tasks) != 0 {
			t.Errorf("SearchTasks() = %d tasks, want 0", len(tasks))
		}
	})

	t.Run("association failure keeps the task and its Create event", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStore(t)
		pub := mocks.NewMockEventPublisher(t)
		svc := NewProjectService(store, pub, discardLogger())

		projectID := uuid.New()
		linkErr := errors.New("locked")
		store.EXPECT().FindProject(mock.Anything, projectID).Return(&project.Project{ID: projectID}, nil)
		store.EXPECT().InsertTask(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, tk *task.Task) (*task.Task, error) { return tk, nil })
		store.EXPECT().InsertMembership(mock.Anything, mock.Anything).Return(false, linkErr)
		pub.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev event.UpdateEvent) bool {
			return ev.Kind == event.KindCreate && ev.EntityType == event.EntityTask
		})).Return(nil).Once()

		if _, err := svc.CreateTaskInProject(context.Background(), projectID, "T", ""); !errors.Is(err, linkErr) {
			t.Errorf("CreateTaskInProject() error = %v, want %v", err, linkErr)
		}
	})
}

func TestProjectService_AddTask(t *testing.T) {
	t.Parallel()

	t.Run("associates once and is idempotent", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		p, _ := h.projects.CreateProject(ctx, "P")
		tk, _ := h.tasks.CreateTask(ctx, "T", "")
		h.drain()

		if err := h.projects.AddTask(ctx, p.ID, tk.ID); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		requireEvents(t, h.drain(), event.TaskUpdated(tk.ID), event.ProjectUpdated(p.ID))

		if err := h.projects.AddTask(ctx, p.ID, tk.ID); err != nil {
			t.Fatalf("AddTask(again) error = %v", err)
		}
		requireEvents(t, h.drain())

		tasks, _ := h.projects.ProjectTasks(ctx, p.ID)
		if len(tasks) != 1 {
			t.Errorf("ProjectTasks() len = %d, want 1", len(tasks))
		}
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		ctx := context.Background()

		p, _ := h.projects.CreateProject(ctx, "P")
		h.drain()

		if err := h.projects.AddTask(ctx, p.ID, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("AddTask() error = %v, want ErrNotFound", err)
		}
		requireEvents(t, h.drain())
	})
}

func TestProjectService_RemoveTask(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	p, _ := h.projects.CreateProject(ctx, "P")
	tk, _ := h.projects.CreateTaskInProject(ctx, p.ID, "T", "")
	h.drain()

	if err := h.projects.RemoveTask(ctx, p.ID, tk.ID); err != nil {
		t.Fatalf("RemoveTask() error = %v", err)
	}
	requireEvents(t, h.drain(), event.TaskUpdated(tk.ID), event.ProjectUpdated(p.ID))

	if err := h.projects.RemoveTask(ctx, p.ID, tk.ID); err != nil {
		t.Fatalf("RemoveTask(absent) error = %v", err)
	}
	requireEvents(t, h.drain())

	if _, err := h.tasks.GetTask(ctx, tk.ID); err != nil {
		t.Errorf("GetTask() after remove error = %v, want task kept", err)
	}
}

// --- Queries ---

func TestProjectService_ListProjects(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	a, _ := h.projects.CreateProject(ctx, "A")
	b, _ := h.projects.CreateProject(ctx, "B")

	got, err := h.projects.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != b.ID || got[1].ID != a.ID {
		t.Errorf("ListProjects() = %+v, want newest first", got)
	}
}

func TestProjectService_ProjectTasks_UnknownProject(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	if _, err := h.projects.ProjectTasks(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ProjectTasks() error = %v, want ErrNotFound", err)
	}
}

func TestProjectService_Stats(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	p, _ := h.projects.CreateProject(ctx, "P")
	empty, _ := h.projects.CreateProject(ctx, "Empty")
	for _, st := range []task.Status{task.StatusTodo, task.StatusComplete, task.StatusComplete} {
		if _, err := h.projects.CreateTaskInProject(ctx, p.ID, "t", st); err != nil {
			t.Fatalf("CreateTaskInProject() error = %v", err)
		}
	}

	got, err := h.projects.Stats(ctx, []string{empty.ID.String(), "garbage", p.ID.String()})
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := []project.Stats{
		{ProjectID: p.ID, Todo: 1, Complete: 2, Total: 3},
		{ProjectID: empty.ID},
	}
	if len(got) != len(want) {
		t.Fatalf("Stats() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stats()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	got, err = h.projects.Stats(ctx, nil)
	if err != nil || len(got) != 0 {
		t.Errorf("Stats(nil) = %+v, %v, want empty", got, err)
	}
}

// --- Notification failures ---

func TestProjectService_PublishFailureDoesNotFailMutation(t *testing.T) {
	t.Parallel()

	for _, pubErr := range []error{feed.ErrNoSubscribers, feed.ErrClosed} {
		store := mocks.NewMockStore(t)
		pub := mocks.NewMockEventPublisher(t)
		svc := NewProjectService(store, pub, discardLogger())

		store.EXPECT().InsertProject(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, p *project.Project) (*project.Project, error) { return p, nil })
		pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(pubErr)

		if _, err := svc.CreateProject(context.Background(), "P"); err != nil {
			t.Errorf("CreateProject() with publish error %v = %v, want nil", pubErr, err)
		}
	}
}
