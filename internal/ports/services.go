package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

// ProjectService defines the service port for project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every successful mutation publishes an update event.
type ProjectService interface {
	// ListProjects returns all projects, newest first.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// GetProject returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error)

	// CreateProject creates a project with the given title.
	// Returns domain.ErrValidation if the title is blank.
	CreateProject(ctx context.Context, title string) (*project.Project, error)

	// EditProject applies a partial update.
	// Returns domain.ErrValidation for an invalid edit and domain.ErrNotFound
	// if the project does not exist.
	EditProject(ctx context.Context, id uuid.UUID, edit project.Edit) (*project.Project, error)

	// DeleteProject deletes a project. Its tasks are kept.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// ProjectTasks returns the project's tasks, oldest first.
	// Returns domain.ErrNotFound if the project does not exist.
	ProjectTasks(ctx context.Context, id uuid.UUID) ([]task.Task, error)

	// CreateTaskInProject creates a task and associates it with the project.
	// Returns domain.ErrNotFound if the project does not exist.
	CreateTaskInProject(ctx context.Context, projectID uuid.UUID, title string, status task.Status) (*task.Task, error)

	// AddTask associates an existing task with the project. Associating an
	// already associated pair is a no-op.
	// Returns domain.ErrNotFound if either side does not exist.
	AddTask(ctx context.Context, projectID, taskID uuid.UUID) error

	// RemoveTask dissociates a task from the project. Removing an absent
	// association is a no-op.
	RemoveTask(ctx context.Context, projectID, taskID uuid.UUID) error

	// Stats returns per-status task counts for the requested projects.
	// Malformed or unknown ids are skipped.
	Stats(ctx context.Context, rawIDs []string) ([]project.Stats, error)
}

// TaskService defines the service port for task operations.
type TaskService interface {
	// SearchTasks returns tasks whose title or description contains text,
	// newest first. Empty text matches every task.
	SearchTasks(ctx context.Context, text string) ([]task.Task, error)

	// GetTask returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// CreateTask creates an unassociated task. An empty status defaults to todo.
	CreateTask(ctx context.Context, title string, status task.Status) (*task.Task, error)

	// EditTask applies a partial update.
	// Returns domain.ErrValidation for an invalid edit and domain.ErrNotFound
	// if the task does not exist.
	EditTask(ctx context.Context, id uuid.UUID, edit task.Edit) (*task.Task, error)

	// ClearFields resets the named optional fields.
	ClearFields(ctx context.Context, id uuid.UUID, fields []task.ClearableField) (*task.Task, error)

	// DeleteTask deletes a task. Its projects are kept.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// TaskProjects returns the projects the task belongs to, oldest first.
	// Returns domain.ErrNotFound if the task does not exist.
	TaskProjects(ctx context.Context, id uuid.UUID) ([]project.Project, error)
}
