package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

type projectRow struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r projectRow) toDomain() project.Project {
	return project.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: stringPtr(r.Description),
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

const projectColumns = "p.id, p.title, p.description, p.created_at"

// InsertProject stores p and returns a copy carrying the assigned CreatedAt.
func (s *Store) InsertProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	created := *p
	created.CreatedAt = s.now()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO project (id, title, description, created_at) VALUES (?, ?, ?, ?)",
		created.ID, created.Title, nullString(created.Description), created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting project %s: %w", p.ID, translateError(err))
	}
	return &created, nil
}

// UpdateProject applies patch and returns the updated row.
func (s *Store) UpdateProject(ctx context.Context, id uuid.UUID, patch project.Patch) (*project.Project, error) {
	var sets []string
	var args []any

	if patch.Title.HasValue() {
		sets = append(sets, "title = ?")
		args = append(args, patch.Title.Value())
	}
	if patch.Description.IsPresent() {
		sets = append(sets, "description = ?")
		args = append(args, optionalString(patch.Description))
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if len(sets) > 0 {
		query := "UPDATE project SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, append(args, id)...); err != nil {
			return nil, fmt.Errorf("updating project %s: %w", id, translateError(err))
		}
	}

	p, err := findProject(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing project %s: %w", id, err)
	}
	return p, nil
}

// DeleteProject removes the project; association rows go with it by cascade.
func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM project WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting project %s: %w", id, translateError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting project %s: %w", id, err)
	}
	return n > 0, nil
}

// FindProject returns domain.ErrNotFound for an unknown id.
func (s *Store) FindProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return findProject(ctx, s.db, id)
}

func findProject(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*project.Project, error) {
	var row projectRow
	err := sqlx.GetContext(ctx, q, &row, "SELECT "+projectColumns+" FROM project p WHERE p.id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", id, translateError(err))
	}
	p := row.toDomain()
	return &p, nil
}

// FindProjects lists projects. With filter.TaskID set, only the projects
// that task belongs to are returned.
func (s *Store) FindProjects(ctx context.Context, filter project.Filter) ([]project.Project, error) {
	query := "SELECT " + projectColumns + " FROM project p"
	var args []any

	if filter.TaskID != nil {
		query += " JOIN task_project tp ON tp.project_id = p.id WHERE tp.task_id = ?"
		args = append(args, *filter.TaskID)
	}

	if filter.Order == project.OldestFirst {
		query += " ORDER BY p.created_at ASC, p.rowid ASC"
	} else {
		query += " ORDER BY p.created_at DESC, p.rowid DESC"
	}

	var rows []projectRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying projects: %w", translateError(err))
	}

	projects := make([]project.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, r.toDomain())
	}
	return projects, nil
}

type statsRow struct {
	ProjectID  uuid.UUID `db:"project_id"`
	Todo       int       `db:"todo"`
	InProgress int       `db:"in_progress"`
	Complete   int       `db:"complete"`
	Total      int       `db:"total"`
}

const statsQuery = `
SELECT
	p.id AS project_id,
	COALESCE(SUM(CASE WHEN t.status = 'todo' THEN 1 ELSE 0 END), 0) AS todo,
	COALESCE(SUM(CASE WHEN t.status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress,
	COALESCE(SUM(CASE WHEN t.status = 'complete' THEN 1 ELSE 0 END), 0) AS complete,
	COUNT(t.id) AS total
FROM project p
LEFT JOIN task_project tp ON tp.project_id = p.id
LEFT JOIN task t ON t.id = tp.task_id
WHERE p.id IN (?)
GROUP BY p.id
ORDER BY p.created_at ASC, p.rowid ASC`

// ProjectStats aggregates task counts per status in a single query.
func (s *Store) ProjectStats(ctx context.Context, ids []uuid.UUID) ([]project.Stats, error) {
	if len(ids) == 0 {
		return []project.Stats{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query, args, err := sqlx.In(statsQuery, keys)
	if err != nil {
		return nil, fmt.Errorf("building stats query: %w", err)
	}

	var rows []statsRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("querying project stats: %w", translateError(err))
	}

	stats := make([]project.Stats, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, project.Stats{
			ProjectID:  r.ProjectID,
			Todo:       r.Todo,
			InProgress: r.InProgress,
			Complete:   r.Complete,
			Total:      r.Total,
		})
	}
	return stats, nil
}

// optionalString converts a present Optional to a column value, mapping
// null to SQL NULL.
func optionalString(o domain.Optional[string]) sql.NullString {
	if o.IsNull() {
		return sql.NullString{}
	}
	return sql.NullString{String: o.Value(), Valid: true}
}
