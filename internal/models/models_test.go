package models_test

import (
	"encoding/json"
	"testing"

	"github.com/tgienger/teamboard/internal/models"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.Role
	}{
		{"canonical admin", "Admin", models.RoleAdmin},
		{"uppercase enum", "ADMIN", models.RoleAdmin},
		{"lowercase", "manager", models.RoleManager},
		{"padded", "  Manager  ", models.RoleManager},
		{"developer", "DEVELOPER", models.RoleDeveloper},
		{"unknown defaults to developer", "superuser", models.RoleDeveloper},
		{"empty defaults to developer", "", models.RoleDeveloper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := models.ParseRole(tt.in); got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoleWire(t *testing.T) {
	if got := models.RoleAdmin.Wire(); got != "ADMIN" {
		t.Errorf("Wire() = %q, want ADMIN", got)
	}
	if got := models.RoleDeveloper.Wire(); got != "DEVELOPER" {
		t.Errorf("Wire() = %q, want DEVELOPER", got)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.Status
	}{
		{"display form", "To Do", models.StatusTodo},
		{"enum name", "TO_DO", models.StatusTodo},
		{"compact", "todo", models.StatusTodo},
		{"in progress display", "In Progress", models.StatusInProgress},
		{"in progress enum", "IN_PROGRESS", models.StatusInProgress},
		{"done lowercase", "done", models.StatusDone},
		{"done enum", "DONE", models.StatusDone},
		{"unknown passes through", "Blocked", models.Status("Blocked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := models.ParseStatus(tt.in); got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatusWire(t *testing.T) {
	tests := []struct {
		status models.Status
		want   string
	}{
		{models.StatusTodo, "TO_DO"},
		{models.StatusInProgress, "IN_PROGRESS"},
		{models.StatusDone, "DONE"},
	}

	for _, tt := range tests {
		if got := tt.status.Wire(); got != tt.want {
			t.Errorf("%q.Wire() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestTaskUnmarshalNormalizesStatus(t *testing.T) {
	raw := `{"id": 7, "title": "Ship it", "status": "IN_PROGRESS", "project_id": 2}`

	var task models.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.Status != models.StatusInProgress {
		t.Errorf("Status = %q, want %q", task.Status, models.StatusInProgress)
	}
	if task.AssignedTo != nil {
		t.Errorf("AssignedTo = %v, want nil", *task.AssignedTo)
	}
}

func TestFallbackProjectLabel(t *testing.T) {
	got := models.FallbackProjectLabel(99)
	if got != "Project #99" {
		t.Errorf("FallbackProjectLabel(99) = %q, want %q", got, "Project #99")
	}
}
