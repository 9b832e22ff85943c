package project

import (
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Edit is a partial update as received from a client. Absent fields are
// left untouched.
type Edit struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
}

// Patch is a validated Edit ready to be applied by the store. A null
// Description clears the stored value.
type Patch struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return !p.Title.IsPresent() && !p.Description.IsPresent()
}

// Patch validates the edit. The title has no clear operation, so a null or
// blank title is rejected.
func (e Edit) Patch() (Patch, error) {
	fields := make(map[string]string)

	if e.Title.IsNull() {
		fields["title"] = domain.MsgMustNotNull
	} else if e.Title.HasValue() && strings.TrimSpace(e.Title.Value()) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}

	if len(fields) > 0 {
		return Patch{}, &domain.ValidationError{Fields: fields}
	}
	return Patch(e), nil
}
