package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of the Store port.
type TaskService struct {
	store  ports.Store
	events notifier
	logger *slog.Logger
}

// NewTaskService creates a TaskService. A nil logger discards output.
func NewTaskService(store ports.Store, publisher ports.EventPublisher, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:  store,
		events: notifier{publisher: publisher, logger: logger},
		logger: logger,
	}
}

// SearchTasks returns tasks whose title or description contains text,
// newest first.
func (s *TaskService) SearchTasks(ctx context.Context, text string) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "searching tasks", slog.String("search", text))

	tasks, err := s.store.FindTasks(ctx, task.Filter{Search: text, Order: task.NewestFirst})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search tasks",
			slog.String("operation", "SearchTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return tasks, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.String("id", id.String()))

	t, err := s.store.FindTask(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// CreateTask validates and stores a task that belongs to no project.
func (s *TaskService) CreateTask(ctx context.Context, title string, status task.Status) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", title))

	t, err := task.New(title, status)
	if err != nil {
		return nil, err
	}

	created, err := s.store.InsertTask(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.events.publish(ctx, event.TaskCreated(created.ID))
	return created, nil
}

// EditTask applies a partial update to an existing task.
func (s *TaskService) EditTask(ctx context.Context, id uuid.UUID, edit task.Edit) (*task.Task, error) {
	s.logger.InfoContext(ctx, "editing task", slog.String("id", id.String()))

	patch, err := edit.Patch()
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, "EditTask", id, patch)
}

// ClearFields resets the named optional fields of a task.
func (s *TaskService) ClearFields(ctx context.Context, id uuid.UUID, fields []task.ClearableField) (*task.Task, error) {
	s.logger.InfoContext(ctx, "clearing task fields",
		slog.String("id", id.String()),
		slog.Any("fields", fields),
	)

	if len(fields) == 0 {
		return nil, domain.NewValidationError("fields", domain.MsgRequired)
	}

	return s.apply(ctx, "ClearFields", id, task.ClearPatch(fields))
}

func (s *TaskService) apply(ctx context.Context, op string, id uuid.UUID, patch task.Patch) (*task.Task, error) {
	updated, err := s.store.UpdateTask(ctx, id, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", op),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.events.publish(ctx, event.TaskUpdated(id))
	return updated, nil
}

// DeleteTask deletes a task. Its projects are kept.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("id", id.String()))

	deleted, err := s.store.DeleteTask(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	if !deleted {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	s.events.publish(ctx, event.TaskDestroyed(id))
	return nil
}

// TaskProjects returns the projects a task belongs to, oldest first.
func (s *TaskService) TaskProjects(ctx context.Context, id uuid.UUID) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing task projects", slog.String("task_id", id.String()))

	if _, err := s.store.FindTask(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify task",
			slog.String("operation", "TaskProjects"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying task: %w", err)
	}

	projects, err := s.store.FindProjects(ctx, project.Filter{TaskID: &id, Order: project.OldestFirst})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task projects",
			slog.String("operation", "TaskProjects"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return projects, nil
}
