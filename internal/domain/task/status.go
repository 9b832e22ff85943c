package task

import (
	"fmt"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Status represents the completion state of a Task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Statuses lists every valid status in workflow order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusComplete}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusComplete:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a raw status string, rejecting unknown values with a
// *domain.ValidationError.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", domain.NewValidationError("status", fmt.Sprintf("invalid: %q", raw))
	}
	return s, nil
}
