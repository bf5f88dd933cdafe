package api

import (
	"context"
	"fmt"

	"github.com/tgienger/teamboard/internal/models"
)

// TaskComments returns all comments on a task, newest first
func (c *Client) TaskComments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.get(ctx, fmt.Sprintf("/api/comments/task/%d", taskID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment posts a comment on a task
func (c *Client) AddComment(ctx context.Context, taskID int64, content string) error {
	body := map[string]string{"content": content}
	return c.post(ctx, fmt.Sprintf("/api/comments/task/%d", taskID), body, nil)
}

// DeleteComment deletes a comment
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/comments/%d", id))
}
