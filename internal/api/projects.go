package api

import (
	"context"
	"fmt"

	"github.com/tgienger/teamboard/internal/models"
)

// Projects returns all projects
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.get(ctx, "/api/projects/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProject creates a new project
func (c *Client) CreateProject(ctx context.Context, title, description string) error {
	body := map[string]string{"title": title, "description": description}
	return c.post(ctx, "/api/projects/", body, nil)
}

// DeleteProject deletes a project and all its tasks
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/projects/%d", id))
}

// ProjectMetrics returns the server-computed rollup for one project
func (c *Client) ProjectMetrics(ctx context.Context, id int64) (*models.ProjectMetrics, error) {
	var out models.ProjectMetrics
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/metrics", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
