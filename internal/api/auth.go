package api

import (
	"context"

	"github.com/tgienger/teamboard/internal/models"
)

// LoginResult is the successful login payload
type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    int64       `json:"id"`
		Name  string      `json:"name"`
		Email string      `json:"email"`
		Role  models.Role `json:"role"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token and profile
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.post(ctx, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. The caller still has to log in afterwards.
func (c *Client) Register(ctx context.Context, fullName, email, password string, role models.Role) error {
	body := map[string]string{
		"full_name": fullName,
		"email":     email,
		"password":  password,
		"role":      role.Wire(),
	}
	return c.post(ctx, "/api/auth/register", body, nil)
}
