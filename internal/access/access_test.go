package access_test

import (
	"testing"

	"github.com/tgienger/teamboard/internal/access"
	"github.com/tgienger/teamboard/internal/models"
)

func TestCapabilitiesByRole(t *testing.T) {
	tests := []struct {
		role          models.Role
		createProject bool
		deleteProject bool
		createTask    bool
		deleteTask    bool
		manageUsers   bool
	}{
		{models.RoleAdmin, true, true, true, true, true},
		{models.RoleManager, true, false, true, true, false},
		{models.RoleDeveloper, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			c := access.Capabilities(tt.role, 1, "Alice")
			if c.CanCreateProject != tt.createProject {
				t.Errorf("CanCreateProject = %v, want %v", c.CanCreateProject, tt.createProject)
			}
			if c.CanDeleteProject != tt.deleteProject {
				t.Errorf("CanDeleteProject = %v, want %v", c.CanDeleteProject, tt.deleteProject)
			}
			if c.CanCreateTask != tt.createTask {
				t.Errorf("CanCreateTask = %v, want %v", c.CanCreateTask, tt.createTask)
			}
			if c.CanDeleteTask != tt.deleteTask {
				t.Errorf("CanDeleteTask = %v, want %v", c.CanDeleteTask, tt.deleteTask)
			}
			if c.CanManageUsers != tt.manageUsers {
				t.Errorf("CanManageUsers = %v, want %v", c.CanManageUsers, tt.manageUsers)
			}
		})
	}
}

func TestAdminNeverActsOnSelf(t *testing.T) {
	c := access.Capabilities(models.RoleAdmin, 42, "Alice")

	if c.CanChangeRole(42) {
		t.Error("admin may not change their own role")
	}
	if c.CanDeleteUser(42) {
		t.Error("admin may not delete their own account")
	}
	if !c.CanChangeRole(7) {
		t.Error("admin should be able to change another user's role")
	}
	if !c.CanDeleteUser(7) {
		t.Error("admin should be able to delete another user")
	}
}

func TestNonAdminCannotManageUsers(t *testing.T) {
	for _, role := range []models.Role{models.RoleManager, models.RoleDeveloper} {
		c := access.Capabilities(role, 1, "Bob")
		if c.CanChangeRole(2) {
			t.Errorf("%s may not change roles", role)
		}
		if c.CanDeleteUser(2) {
			t.Errorf("%s may not delete users", role)
		}
	}
}

func TestCanDeleteComment(t *testing.T) {
	tests := []struct {
		name  string
		role  models.Role
		self  string
		owner string
		want  bool
	}{
		{"admin deletes anyone's", models.RoleAdmin, "Alice", "Bob", true},
		{"admin deletes own", models.RoleAdmin, "Alice", "Alice", true},
		{"developer deletes own", models.RoleDeveloper, "Bob", "Bob", true},
		{"developer blocked on others", models.RoleDeveloper, "Bob", "Alice", false},
		{"manager blocked on others", models.RoleManager, "Carol", "Bob", false},
		{"empty owner never matches", models.RoleDeveloper, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := access.Capabilities(tt.role, 1, tt.self)
			if got := c.CanDeleteComment(tt.owner); got != tt.want {
				t.Errorf("CanDeleteComment(%q) = %v, want %v", tt.owner, got, tt.want)
			}
		})
	}
}
