// Package project defines the Project entity, its partial-update payloads,
// and the per-project task statistics read model.
package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Project is a named collection of tasks. Tasks join projects through
// association rows, so a task may belong to many projects.
type Project struct {
	ID          uuid.UUID
	Title       string
	Description *string
	CreatedAt   time.Time
}

// New returns a validated Project with a fresh identifier. CreatedAt is left
// zero; the store assigns it on insert.
func New(title string) (*Project, error) {
	p := &Project{ID: uuid.New(), Title: title}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return domain.NewValidationError("title", domain.MsgRequired)
	}
	return nil
}

// Order selects the created_at ordering of project listings.
type Order int

const (
	NewestFirst Order = iota
	OldestFirst
)

// Filter holds optional criteria for listing projects.
// A nil TaskID lists every project.
type Filter struct {
	TaskID *uuid.UUID
	Order  Order
}
