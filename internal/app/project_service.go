// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
// Every committed mutation is announced on the live feed.
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

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the Store port.
// It handles validation, structured logging, and event publication.
type ProjectService struct {
	store  ports.Store
	events notifier
	logger *slog.Logger
}

// NewProjectService creates a ProjectService. Events are published to
// publisher after each successful mutation. A nil logger discards output.
func NewProjectService(store ports.Store, publisher ports.EventPublisher, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		store:  store,
		events: notifier{publisher: publisher, logger: logger},
		logger: logger,
	}
}

// ListProjects returns all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects")

	projects, err := s.store.FindProjects(ctx, project.Filter{Order: project.NewestFirst})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return projects, nil
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("id", id.String()))

	p, err := s.store.FindProject(ctx, id)
	if err != nil {
		s.logError(ctx, "failed to fetch project", "GetProject", err, slog.String("id", id.String()))
		return nil, err
	}

	return p, nil
}

// CreateProject validates and stores a new project.
func (s *ProjectService) CreateProject(ctx context.Context, title string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("title", title))

	p, err := project.New(title)
	if err != nil {
		return nil, err
	}

	created, err := s.store.InsertProject(ctx, p)
	if err != nil {
		s.logError(ctx, "failed to create project", "CreateProject", err)
		return nil, err
	}

	s.events.publish(ctx, event.ProjectCreated(created.ID))
	return created, nil
}

// EditProject applies a partial update to an existing project.
func (s *ProjectService) EditProject(ctx context.Context, id uuid.UUID, edit project.Edit) (*project.Project, error) {
	s.logger.InfoContext(ctx, "editing project", slog.String("id", id.String()))

	patch, err := edit.Patch()
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateProject(ctx, id, patch)
	if err != nil {
		s.logError(ctx, "failed to edit project", "EditProject", err, slog.String("id", id.String()))
		return nil, err
	}

	s.events.publish(ctx, event.ProjectUpdated(id))
	return updated, nil
}

// DeleteProject deletes a project. Its tasks are kept.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting project", slog.String("id", id.String()))

	deleted, err := s.store.DeleteProject(ctx, id)
	if err != nil {
		s.logError(ctx, "failed to delete project", "DeleteProject", err, slog.String("id", id.String()))
		return err
	}
	if !deleted {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	s.events.publish(ctx, event.ProjectDestroyed(id))
	return nil
}

// ProjectTasks returns the tasks of a project, oldest first.
func (s *ProjectService) ProjectTasks(ctx context.Context, id uuid.UUID) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing project tasks", slog.String("project_id", id.String()))

	if _, err := s.store.FindProject(ctx, id); err != nil {
		s.logError(ctx, "failed to verify project", "ProjectTasks", err, slog.String("project_id", id.String()))
		return nil, fmt.Errorf("verifying project: %w", err)
	}

	tasks, err := s.store.FindTasks(ctx, task.Filter{ProjectID: &id, Order: task.OldestFirst})
	if err != nil {
		s.logError(ctx, "failed to list project tasks", "ProjectTasks", err, slog.String("project_id", id.String()))
		return nil, err
	}

	return tasks, nil
}

// CreateTaskInProject creates a task and associates it with the project.
// The project is checked first so an unknown project writes nothing. Once the
// task row exists it stays, and Create/Task is published, even if the
// association step then fails.
func (s *ProjectService) CreateTaskInProject(
	ctx context.Context, projectID uuid.UUID, title string, status task.Status,
) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task in project", slog.String("project_id", projectID.String()))

	t, err := task.New(title, status)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.FindProject(ctx, projectID); err != nil {
		s.logError(ctx, "failed to verify project", "CreateTaskInProject", err,
			slog.String("project_id", projectID.String()))
		return nil, fmt.Errorf("verifying project: %w", err)
	}

	created, err := s.store.InsertTask(ctx, t)
	if err != nil {
		s.logError(ctx, "failed to create task", "CreateTaskInProject", err,
			slog.String("project_id", projectID.String()))
		return nil, fmt.Errorf("creating task: %w", err)
	}
	s.events.publish(ctx, event.TaskCreated(created.ID))

	if _, err := s.store.InsertMembership(ctx, task.Membership{ProjectID: projectID, TaskID: created.ID}); err != nil {
		s.logError(ctx, "failed to associate new task", "CreateTaskInProject", err,
			slog.String("project_id", projectID.String()),
			slog.String("task_id", created.ID.String()),
		)
		return nil, fmt.Errorf("associating task %s: %w", created.ID, err)
	}
	s.events.publish(ctx, event.ProjectUpdated(projectID))

	return created, nil
}

// AddTask associates an existing task with the project. Re-adding an
// existing association changes nothing and publishes nothing.
func (s *ProjectService) AddTask(ctx context.Context, projectID, taskID uuid.UUID) error {
	attrs := []any{slog.String("project_id", projectID.String()), slog.String("task_id", taskID.String())}
	s.logger.InfoContext(ctx, "adding task to project", attrs...)

	if _, err := s.store.FindProject(ctx, projectID); err != nil {
		s.logError(ctx, "failed to verify project", "AddTask", err, attrs...)
		return fmt.Errorf("verifying project: %w", err)
	}
	if _, err := s.store.FindTask(ctx, taskID); err != nil {
		s.logError(ctx, "failed to verify task", "AddTask", err, attrs...)
		return fmt.Errorf("verifying task: %w", err)
	}

	created, err := s.store.InsertMembership(ctx, task.Membership{ProjectID: projectID, TaskID: taskID})
	if err != nil {
		s.logError(ctx, "failed to add task to project", "AddTask", err, attrs...)
		return err
	}

	if created {
		s.events.publish(ctx, event.TaskUpdated(taskID), event.ProjectUpdated(projectID))
	}
	return nil
}

// RemoveTask dissociates a task from the project. Removing an absent
// association changes nothing and publishes nothing.
func (s *ProjectService) RemoveTask(ctx context.Context, projectID, taskID uuid.UUID) error {
	attrs := []any{slog.String("project_id", projectID.String()), slog.String("task_id", taskID.String())}
	s.logger.InfoContext(ctx, "removing task from project", attrs...)

	removed, err := s.store.DeleteMembership(ctx, projectID, taskID)
	if err != nil {
		s.logError(ctx, "failed to remove task from project", "RemoveTask", err, attrs...)
		return err
	}

	if removed {
		s.events.publish(ctx, event.TaskUpdated(taskID), event.ProjectUpdated(projectID))
	}
	return nil
}

// Stats returns per-status task counts for the requested projects, ordered
// by project creation time. Malformed and unknown ids are skipped.
func (s *ProjectService) Stats(ctx context.Context, rawIDs []string) ([]project.Stats, error) {
	s.logger.InfoContext(ctx, "computing project stats", slog.Int("requested", len(rawIDs)))

	stats, err := s.store.ProjectStats(ctx, project.ParseIDs(rawIDs))
	if err != nil {
		s.logError(ctx, "failed to compute project stats", "Stats", err)
		return nil, err
	}

	return stats, nil
}

// logError logs a failed store call with the operation name and any extra
// attributes.
func (s *ProjectService) logError(ctx context.Context, msg, op string, err error, attrs ...any) {
	args := append([]any{slog.String("operation", op)}, attrs...)
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, msg, args...)
}
