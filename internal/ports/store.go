package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

// ProjectStore persists projects. Implemented by the SQLite adapter.
type ProjectStore interface {
	// InsertProject stores a new project and returns it with CreatedAt set.
	InsertProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// UpdateProject applies a validated patch and returns the stored result.
	// Returns domain.ErrNotFound if the project does not exist.
	UpdateProject(ctx context.Context, id uuid.UUID, patch project.Patch) (*project.Project, error)

	// DeleteProject removes a project and its association rows. Tasks are kept.
	// Reports whether a row was deleted.
	DeleteProject(ctx context.Context, id uuid.UUID) (bool, error)

	// FindProject returns domain.ErrNotFound if the project does not exist.
	FindProject(ctx context.Context, id uuid.UUID) (*project.Project, error)

	// FindProjects lists projects matching the filter.
	FindProjects(ctx context.Context, filter project.Filter) ([]project.Project, error)

	// ProjectStats counts tasks per status for each requested project that
	// exists. Unknown ids produce no row.
	ProjectStats(ctx context.Context, ids []uuid.UUID) ([]project.Stats, error)
}

// TaskStore persists tasks and their project memberships.
type TaskStore interface {
	// InsertTask stores a new task and returns it with CreatedAt set.
	InsertTask(ctx context.Context, t *task.Task) (*task.Task, error)

	// UpdateTask applies a validated patch and returns the stored result.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id uuid.UUID, patch task.Patch) (*task.Task, error)

	// DeleteTask removes a task and its association rows. Reports whether a
	// row was deleted.
	DeleteTask(ctx context.Context, id uuid.UUID) (bool, error)

	// FindTask returns domain.ErrNotFound if the task does not exist.
	FindTask(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// FindTasks lists tasks matching the filter.
	FindTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// InsertMembership associates a task with a project. Reports false when
	// the pair already existed.
	InsertMembership(ctx context.Context, m task.Membership) (bool, error)

	// DeleteMembership dissociates a task from a project. Reports false when
	// no such association existed.
	DeleteMembership(ctx context.Context, projectID, taskID uuid.UUID) (bool, error)
}

// Store is the full persistence port used by the application layer.
type Store interface {
	ProjectStore
	TaskStore
}
