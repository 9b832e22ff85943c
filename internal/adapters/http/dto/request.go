package dto

import (
	"errors"
	"maps"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Title string `json:"title"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.NewValidationError("title", domain.MsgRequired)
	}
	return nil
}

// EditProjectRequest represents the JSON body for a partial project update.
// A key missing from the body leaves the field untouched; an explicit null
// clears it where the field allows clearing.
type EditProjectRequest struct {
	Title       domain.Optional[string] `json:"title,omitzero"`
	Description domain.Optional[string] `json:"description,omitzero"`
}

// Edit converts the request to a domain edit.
func (r *EditProjectRequest) Edit() project.Edit {
	return project.Edit{
		Title:       r.Title,
		Description: r.Description,
	}
}

// Validate checks the edit against the project rules.
func (r *EditProjectRequest) Validate() error {
	_, err := r.Edit().Patch()
	return err
}

// CreateTaskRequest represents the JSON body for creating a task, either
// standalone or inside a project. An omitted status defaults to todo.
type CreateTaskRequest struct {
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
}

// Validate checks that required fields are present and the status, if any,
// is known. Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.Status != "" {
		var verr *domain.ValidationError
		if _, err := task.ParseStatus(r.Status); errors.As(err, &verr) {
			maps.Copy(fields, verr.Fields)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TaskStatus returns the requested status, empty when omitted.
func (r *CreateTaskRequest) TaskStatus() task.Status {
	return task.Status(r.Status)
}

// EditTaskRequest represents the JSON body for a partial task update.
// Null description or due_date clears the field.
type EditTaskRequest struct {
	Title       domain.Optional[string] `json:"title,omitzero"`
	Description domain.Optional[string] `json:"description,omitzero"`
	Status      domain.Optional[string] `json:"status,omitzero"`
	DueDate     domain.Optional[string] `json:"due_date,omitzero"`
}

// Edit converts the request to a domain edit.
func (r *EditTaskRequest) Edit() task.Edit {
	return task.Edit{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
	}
}

// Validate checks the edit against the task rules.
func (r *EditTaskRequest) Validate() error {
	_, err := r.Edit().Patch()
	return err
}
