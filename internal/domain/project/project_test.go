package project_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false")
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title", title: "Sprint 1"},
		{name: "empty title fails", title: "", wantErr: true},
		{name: "whitespace title fails", title: " \t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := project.New(tt.title)
			if tt.wantErr {
				requireValidationField(t, err, "title")
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if p.ID == uuid.Nil {
				t.Error("New() ID = uuid.Nil, want generated id")
			}
			if p.Title != tt.title {
				t.Errorf("New() Title = %q, want %q", p.Title, tt.title)
			}
		})
	}
}

func TestEdit_Patch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		edit      project.Edit
		wantField string
		wantEmpty bool
	}{
		{name: "empty edit", edit: project.Edit{}, wantEmpty: true},
		{name: "new title", edit: project.Edit{Title: domain.Some("Renamed")}},
		{name: "null description clears", edit: project.Edit{Description: domain.Null[string]()}},
		{name: "null title rejected", edit: project.Edit{Title: domain.Null[string]()}, wantField: "title"},
		{name: "blank title rejected", edit: project.Edit{Title: domain.Some("  ")}, wantField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			patch, err := tt.edit.Patch()
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("Patch() error = %v", err)
			}
			if patch.IsEmpty() != tt.wantEmpty {
				t.Errorf("Patch().IsEmpty() = %v, want %v", patch.IsEmpty(), tt.wantEmpty)
			}
			if patch.Description.IsNull() != tt.edit.Description.IsNull() {
				t.Errorf("Patch().Description.IsNull() = %v, want %v",
					patch.Description.IsNull(), tt.edit.Description.IsNull())
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	t.Parallel()

	good := uuid.New()
	got := project.ParseIDs([]string{good.String(), "not-a-uuid", ""})

	want := []uuid.UUID{good, uuid.Nil, uuid.Nil}
	if len(got) != len(want) {
		t.Fatalf("ParseIDs() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseIDs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := project.ParseIDs(nil); len(got) != 0 {
		t.Errorf("ParseIDs(nil) = %v, want empty", got)
	}
}
