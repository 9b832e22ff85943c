// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
)

// ProjectResponse represents a single project in HTTP responses.
// Absent optional fields encode as null.
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   string    `json:"created_at"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

// ToProjectListResponse converts a slice of domain Project entities to an
// HTTP list response. An empty input yields an empty, non-nil slice so it
// encodes as [].
func ToProjectListResponse(projects []project.Project) []ProjectResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return items
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   string    `json:"created_at"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Status:      t.Status.String(),
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.String()
		resp.DueDate = &due
	}
	return resp
}

// ToTaskListResponse converts a slice of domain Task entities to an HTTP
// list response.
func ToTaskListResponse(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

// ProjectStatsResponse carries the per-status task counts of one project.
type ProjectStatsResponse struct {
	ID              uuid.UUID `json:"id"`
	TodoTasks       int       `json:"todo_tasks"`
	InProgressTasks int       `json:"in_progress_tasks"`
	CompletedTasks  int       `json:"completed_tasks"`
	TotalTasks      int       `json:"total_tasks"`
}

// ToProjectStatsResponse converts aggregated stats to HTTP response DTOs.
func ToProjectStatsResponse(stats []project.Stats) []ProjectStatsResponse {
	items := make([]ProjectStatsResponse, len(stats))
	for i, s := range stats {
		items[i] = ProjectStatsResponse{
			ID:              s.ProjectID,
			TodoTasks:       s.Todo,
			InProgressTasks: s.InProgress,
			CompletedTasks:  s.Complete,
			TotalTasks:      s.Total,
		}
	}
	return items
}
