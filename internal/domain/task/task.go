// Package task defines the Task entity, its status and calendar-date value
// types, partial-update payloads, and project membership rows.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Task is a unit of work that may belong to any number of projects.
type Task struct {
	ID          uuid.UUID
	Title       string
	Status      Status
	Description *string
	DueDate     *Date
	CreatedAt   time.Time
}

// New returns a validated Task with a fresh identifier. An empty status
// defaults to StatusTodo.
func New(title string, status Status) (*Task, error) {
	if status == "" {
		status = StatusTodo
	}
	t := &Task{ID: uuid.New(), Title: title, Status: status}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Order selects the created_at ordering of task listings.
type Order int

const (
	NewestFirst Order = iota
	OldestFirst
)

// Filter holds optional criteria for listing tasks. Search matches the title
// or description as a literal substring; an empty Search matches everything.
// A non-nil ProjectID restricts the listing to that project's tasks.
type Filter struct {
	Search    string
	ProjectID *uuid.UUID
	Order     Order
}

// Membership is the association row linking one task to one project.
type Membership struct {
	ProjectID uuid.UUID
	TaskID    uuid.UUID
	CreatedAt time.Time
}
