package task

import (
	"fmt"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// ClearableField names an optional Task field that can be reset to empty
// independently of an edit payload.
type ClearableField int

const (
	ClearDescription ClearableField = iota + 1
	ClearDueDate
)

var clearableNames = map[string]ClearableField{
	"description": ClearDescription,
	"due_date":    ClearDueDate,
}

// String returns the wire name of the field.
func (f ClearableField) String() string {
	switch f {
	case ClearDescription:
		return "description"
	case ClearDueDate:
		return "due_date"
	default:
		return fmt.Sprintf("ClearableField(%d)", int(f))
	}
}

// ParseClearableFields converts wire names into clearable fields. Duplicates
// collapse; unknown names and an empty list are validation errors.
func ParseClearableFields(names []string) ([]ClearableField, error) {
	if len(names) == 0 {
		return nil, domain.NewValidationError("fields", domain.MsgRequired)
	}

	seen := make(map[ClearableField]bool, len(names))
	fields := make([]ClearableField, 0, len(names))
	for _, name := range names {
		f, ok := clearableNames[name]
		if !ok {
			return nil, domain.NewValidationError("fields", fmt.Sprintf("unknown clearable field %q", name))
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		fields = append(fields, f)
	}
	return fields, nil
}

// ClearPatch returns a Patch that nulls each named field and leaves every
// other field untouched.
func ClearPatch(fields []ClearableField) Patch {
	var p Patch
	for _, f := range fields {
		switch f {
		case ClearDescription:
			p.Description = domain.Null[string]()
		case ClearDueDate:
			p.DueDate = domain.Null[Date]()
		}
	}
	return p
}
