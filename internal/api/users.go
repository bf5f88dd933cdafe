package api

import (
	"context"
	"fmt"

	"github.com/tgienger/teamboard/internal/models"
)

// NewUser is the create-user request (admin only)
type NewUser struct {
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// Users returns all team members
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.get(ctx, "/api/users/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates a new account on behalf of an admin
func (c *Client) CreateUser(ctx context.Context, u NewUser) error {
	body := map[string]string{
		"full_name": u.FullName,
		"email":     u.Email,
		"password":  u.Password,
		"role":      u.Role.Wire(),
	}
	return c.post(ctx, "/api/users/", body, nil)
}

// UpdateUserRole changes a user's role
func (c *Client) UpdateUserRole(ctx context.Context, id int64, role models.Role) error {
	body := map[string]string{"role": role.Wire()}
	return c.patch(ctx, fmt.Sprintf("/api/users/%d", id), body)
}

// DeleteUser deletes a user account
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}
