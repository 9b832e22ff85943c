package task

import (
	"errors"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// Edit is a partial update as received from a client, with every field in
// its raw string form.
type Edit struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	Status      domain.Optional[string]
	DueDate     domain.Optional[string]
}

// Patch is a validated partial update ready to be applied by the store.
// Absent fields are untouched; null Description or DueDate clears the field.
type Patch struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	Status      domain.Optional[Status]
	DueDate     domain.Optional[Date]
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return !p.Title.IsPresent() && !p.Description.IsPresent() &&
		!p.Status.IsPresent() && !p.DueDate.IsPresent()
}

// Patch validates the edit and converts status and due date to their domain
// types. All field errors are reported together.
func (e Edit) Patch() (Patch, error) {
	fields := make(map[string]string)
	p := Patch{Description: e.Description}

	switch {
	case e.Title.IsNull():
		fields["title"] = domain.MsgMustNotNull
	case e.Title.HasValue() && strings.TrimSpace(e.Title.Value()) == "":
		fields["title"] = domain.MsgMustNotEmpty
	default:
		p.Title = e.Title
	}

	switch {
	case e.Status.IsNull():
		fields["status"] = domain.MsgMustNotNull
	case e.Status.HasValue():
		s, err := ParseStatus(e.Status.Value())
		if err != nil {
			mergeFields(fields, err)
		} else {
			p.Status = domain.Some(s)
		}
	}

	switch {
	case e.DueDate.IsNull():
		p.DueDate = domain.Null[Date]()
	case e.DueDate.HasValue():
		d, err := ParseDate(e.DueDate.Value())
		if err != nil {
			mergeFields(fields, err)
		} else {
			p.DueDate = domain.Some(d)
		}
	}

	if len(fields) > 0 {
		return Patch{}, &domain.ValidationError{Fields: fields}
	}
	return p, nil
}

func mergeFields(dst map[string]string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for k, v := range verr.Fields {
			dst[k] = v
		}
	}
}
