package api

import (
	"context"
	"fmt"

	"github.com/tgienger/teamboard/internal/models"
)

// NewTask is the create-task request. AssignedTo and Deadline are optional;
// Deadline is YYYY-MM-DD when set.
type NewTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   int64  `json:"project_id"`
	AssignedTo  *int64 `json:"assigned_to"`
	Deadline    string `json:"deadline,omitempty"`
}

// Tasks returns the tasks visible to the current user
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	if err := c.get(ctx, "/api/tasks/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask creates a new task
func (c *Client) CreateTask(ctx context.Context, t NewTask) error {
	return c.post(ctx, "/api/tasks/", t, nil)
}

// UpdateTaskStatus sets a task's status. The backend takes the enum name,
// not the display value.
func (c *Client) UpdateTaskStatus(ctx context.Context, id int64, status models.Status) error {
	body := map[string]string{"status": status.Wire()}
	return c.patch(ctx, fmt.Sprintf("/api/tasks/%d/status", id), body)
}

// DeleteTask deletes a task
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/tasks/%d", id))
}
