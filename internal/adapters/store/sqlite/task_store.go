package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

type taskRow struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Status      string         `db:"status"`
	Description sql.NullString `db:"description"`
	DueDate     sql.NullString `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r taskRow) toDomain() (task.Task, error) {
	t := task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Status:      task.Status(r.Status),
		Description: stringPtr(r.Description),
		CreatedAt:   r.CreatedAt.UTC(),
	}
	if r.DueDate.Valid {
		d, err := task.ParseDate(r.DueDate.String)
		if err != nil {
			return task.Task{}, fmt.Errorf("decoding due_date of task %s: %w", r.ID, err)
		}
		t.DueDate = &d
	}
	return t, nil
}

const taskColumns = "t.id, t.title, t.status, t.description, t.due_date, t.created_at"

func dueDateValue(d *task.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

// InsertTask stores t and returns a copy carrying the assigned CreatedAt.
func (s *Store) InsertTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	created := *t
	created.CreatedAt = s.now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO task (id, title, status, description, due_date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		created.ID, created.Title, string(created.Status),
		nullString(created.Description), dueDateValue(created.DueDate), created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task %s: %w", t.ID, translateError(err))
	}
	return &created, nil
}

// UpdateTask applies patch and returns the updated row.
func (s *Store) UpdateTask(ctx context.Context, id uuid.UUID, patch task.Patch) (*task.Task, error) {
	var sets []string
	var args []any

	if patch.Title.HasValue() {
		sets = append(sets, "title = ?")
		args = append(args, patch.Title.Value())
	}
	if patch.Status.HasValue() {
		sets = append(sets, "status = ?")
		args = append(args, string(patch.Status.Value()))
	}
	if patch.Description.IsPresent() {
		sets = append(sets, "description = ?")
		args = append(args, optionalString(patch.Description))
	}
	if patch.DueDate.IsPresent() {
		var due *task.Date
		if patch.DueDate.HasValue() {
			d := patch.DueDate.Value()
			due = &d
		}
		sets = append(sets, "due_date = ?")
		args = append(args, dueDateValue(due))
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if len(sets) > 0 {
		query := "UPDATE task SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, append(args, id)...); err != nil {
			return nil, fmt.Errorf("updating task %s: %w", id, translateError(err))
		}
	}

	t, err := findTask(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing task %s: %w", id, err)
	}
	return t, nil
}

// DeleteTask removes the task; association rows go with it by cascade.
func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM task WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting task %s: %w", id, translateError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting task %s: %w", id, err)
	}
	return n > 0, nil
}

// FindTask returns domain.ErrNotFound for an unknown id.
func (s *Store) FindTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return findTask(ctx, s.db, id)
}

func findTask(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*task.Task, error) {
	var row taskRow
	err := sqlx.GetContext(ctx, q, &row, "SELECT "+taskColumns+" FROM task t WHERE t.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", id, translateError(err))
	}
	t, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindTasks lists tasks matching filter. Search text is matched literally
// against title and description.
func (s *Store) FindTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	query := "SELECT " + taskColumns + " FROM task t"
	var conditions []string
	var args []any

	if filter.ProjectID != nil {
		query += " JOIN task_project tp ON tp.task_id = t.id"
		conditions = append(conditions, "tp.project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.Search != "" {
		conditions = append(conditions, `(t.title LIKE ? ESCAPE '\' OR t.description LIKE ? ESCAPE '\')`)
		pattern := "%" + escapeLike(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	if filter.Order == task.OldestFirst {
		query += " ORDER BY t.created_at ASC, t.rowid ASC"
	} else {
		query += " ORDER BY t.created_at DESC, t.rowid DESC"
	}

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying tasks: %w", translateError(err))
	}

	tasks := make([]task.Task, 0, len(rows))
	for _, r := range rows {
		t, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// InsertMembership associates a task with a project. An existing pair is
// left as is and reported as not created.
func (s *Store) InsertMembership(ctx context.Context, m task.Membership) (bool, error) {
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO task_project (project_id, task_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (project_id, task_id) DO NOTHING`,
		m.ProjectID, m.TaskID, createdAt,
	)
	if err != nil {
		return false, fmt.Errorf("adding task %s to project %s: %w", m.TaskID, m.ProjectID, translateError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("adding task %s to project %s: %w", m.TaskID, m.ProjectID, err)
	}
	return n > 0, nil
}

// DeleteMembership dissociates a task from a project.
func (s *Store) DeleteMembership(ctx context.Context, projectID, taskID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM task_project WHERE project_id = ? AND task_id = ?",
		projectID, taskID,
	)
	if err != nil {
		return false, fmt.Errorf("removing task %s from project %s: %w", taskID, projectID, translateError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("removing task %s from project %s: %w", taskID, projectID, err)
	}
	return n > 0, nil
}
