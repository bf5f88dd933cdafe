package store

import (
	"context"

	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/models"
)

// Scope names the state a completed mutation invalidates. Callers must run
// the matching refresh; mutations never patch local state directly.
type Scope int

const (
	ScopeNone     Scope = iota // mutation failed, nothing changed
	ScopeEntities              // refresh the whole entity store
	ScopeComments              // reload only the open comment thread
)

// Gateway is the single path for mutations. Every method calls the backend
// and reports which refresh the caller owes on success; on error the server
// state is assumed unchanged and no refresh is required.
type Gateway struct {
	api *api.Client
}

// NewGateway wraps an API client
func NewGateway(client *api.Client) *Gateway {
	return &Gateway{api: client}
}

func scoped(scope Scope, err error) (Scope, error) {
	if err != nil {
		return ScopeNone, err
	}
	return scope, nil
}

// CreateProject creates a project
func (g *Gateway) CreateProject(ctx context.Context, title, description string) (Scope, error) {
	return scoped(ScopeEntities, g.api.CreateProject(ctx, title, description))
}

// DeleteProject deletes a project and all its tasks
func (g *Gateway) DeleteProject(ctx context.Context, id int64) (Scope, error) {
	return scoped(ScopeEntities, g.api.DeleteProject(ctx, id))
}

// CreateTask creates a task
func (g *Gateway) CreateTask(ctx context.Context, t api.NewTask) (Scope, error) {
	return scoped(ScopeEntities, g.api.CreateTask(ctx, t))
}

// UpdateTaskStatus sets a task's status
func (g *Gateway) UpdateTaskStatus(ctx context.Context, id int64, status models.Status) (Scope, error) {
	return scoped(ScopeEntities, g.api.UpdateTaskStatus(ctx, id, status))
}

// DeleteTask deletes a task
func (g *Gateway) DeleteTask(ctx context.Context, id int64) (Scope, error) {
	return scoped(ScopeEntities, g.api.DeleteTask(ctx, id))
}

// CreateUser creates a user account
func (g *Gateway) CreateUser(ctx context.Context, u api.NewUser) (Scope, error) {
	return scoped(ScopeEntities, g.api.CreateUser(ctx, u))
}

// UpdateUserRole changes a user's role
func (g *Gateway) UpdateUserRole(ctx context.Context, id int64, role models.Role) (Scope, error) {
	return scoped(ScopeEntities, g.api.UpdateUserRole(ctx, id, role))
}

// DeleteUser deletes a user account
func (g *Gateway) DeleteUser(ctx context.Context, id int64) (Scope, error) {
	return scoped(ScopeEntities, g.api.DeleteUser(ctx, id))
}

// AddComment posts a comment on a task
func (g *Gateway) AddComment(ctx context.Context, taskID int64, content string) (Scope, error) {
	return scoped(ScopeComments, g.api.AddComment(ctx, taskID, content))
}

// DeleteComment deletes a comment
func (g *Gateway) DeleteComment(ctx context.Context, id int64) (Scope, error) {
	return scoped(ScopeComments, g.api.DeleteComment(ctx, id))
}
