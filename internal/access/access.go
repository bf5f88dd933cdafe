// Package access maps roles to the actions they may perform. It holds no
// state; the server remains the authority, this matrix only gates which
// affordances the client offers.
package access

import (
	"github.com/tgienger/teamboard/internal/models"
)

// Caps is the set of actions available to one acting user
type Caps struct {
	role   models.Role
	userID int64
	name   string

	CanCreateProject bool
	CanDeleteProject bool
	CanCreateTask    bool
	CanDeleteTask    bool
	CanManageUsers   bool
}

// Capabilities builds the capability set for an acting user. The display
// name feeds the owner-match rule on comment deletion.
func Capabilities(role models.Role, actingUserID int64, actingName string) Caps {
	c := Caps{
		role:   role,
		userID: actingUserID,
		name:   actingName,
	}
	switch role {
	case models.RoleAdmin:
		c.CanCreateProject = true
		c.CanDeleteProject = true
		c.CanCreateTask = true
		c.CanDeleteTask = true
		c.CanManageUsers = true
	case models.RoleManager:
		c.CanCreateProject = true
		c.CanCreateTask = true
		c.CanDeleteTask = true
	}
	return c
}

// CanDeleteComment reports whether the acting user may delete a comment
// written by ownerName. Admins may delete any comment; everyone else only
// their own, matched by recorded display name.
func (c Caps) CanDeleteComment(ownerName string) bool {
	if c.role == models.RoleAdmin {
		return true
	}
	return ownerName != "" && ownerName == c.name
}

// CanChangeRole reports whether the acting user may change targetID's role.
// Admins may change any role except their own.
func (c Caps) CanChangeRole(targetID int64) bool {
	return c.CanManageUsers && targetID != c.userID
}

// CanDeleteUser reports whether the acting user may delete targetID.
// Admins may delete any account except their own.
func (c Caps) CanDeleteUser(targetID int64) bool {
	return c.CanManageUsers && targetID != c.userID
}
