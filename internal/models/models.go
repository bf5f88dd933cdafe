package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the canonical role tag for a user
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleManager   Role = "Manager"
	RoleDeveloper Role = "Developer"
)

// ParseRole normalizes a wire-format role value to its canonical tag.
// Matching is case-insensitive; unknown values default to Developer.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	default:
		return RoleDeveloper
	}
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

// Wire returns the enum name the backend expects on writes
func (r Role) Wire() string {
	return strings.ToUpper(string(r))
}

// Status is the canonical task status
type Status string

const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// ParseStatus normalizes a status value to its canonical form. Both the
// display form ("In Progress") and the enum name ("IN_PROGRESS") are
// accepted, case-insensitively. Unknown values pass through unchanged.
func ParseStatus(s string) Status {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
	switch norm {
	case "to do", "todo":
		return StatusTodo
	case "in progress", "inprogress":
		return StatusInProgress
	case "done":
		return StatusDone
	}
	return Status(s)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// Wire returns the enum name the backend expects on status updates
func (s Status) Wire() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), " ", "_"))
}

// User is a team member
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Project groups tasks. CreatedBy and TaskCount are server-computed display
// fields, never derived locally.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	TaskCount   int    `json:"task_count"`
}

// Task is a unit of work. IsOverdue is computed by the server from the
// deadline and must not be recomputed client-side.
type Task struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Status         Status `json:"status"`
	ProjectID      int64  `json:"project_id"`
	AssignedTo     *int64 `json:"assigned_to"`
	AssignedToName string `json:"assigned_to_name"`
	Deadline       string `json:"deadline"`
	IsOverdue      bool   `json:"is_overdue"`
}

// Comment on a task. CreatedAt is an opaque display string from the server.
type Comment struct {
	ID        int64  `json:"id"`
	TaskID    int64  `json:"task_id"`
	Content   string `json:"content"`
	UserName  string `json:"user_name"`
	UserRole  Role   `json:"user_role"`
	CreatedAt string `json:"created_at"`
}

// ProjectMetrics is the per-project rollup from the metrics endpoint
type ProjectMetrics struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	InProgress int `json:"in_progress"`
	Todo       int `json:"todo"`
	Overdue    int `json:"overdue"`
	Progress   int `json:"progress"`
}

// FallbackProjectLabel is shown when a task references a project that is
// not in the loaded collection.
func FallbackProjectLabel(projectID int64) string {
	return fmt.Sprintf("Project #%d", projectID)
}
