// Package rbac implements the role-based authorization model. It is a
// static role-to-permission mapping with no state and no I/O; every
// store operation consults it before touching a collection.
package rbac

import "github.com/bright-coral-crab/tooldeck/internal/models"

// Permission is an atomic action:resource capability token. Permissions
// are non-hierarchical; holding edit:tools does not imply view:tools.
type Permission string

const (
	PermViewTools    Permission = "view:tools"
	PermCreateTools  Permission = "create:tools"
	PermEditTools    Permission = "edit:tools"
	PermDeleteTools  Permission = "delete:tools"
	PermViewUsers    Permission = "view:users"
	PermCreateUsers  Permission = "create:users"
	PermEditUsers    Permission = "edit:users"
	PermDeleteUsers  Permission = "delete:users"
	PermViewSettings Permission = "view:settings"
	PermEditSettings Permission = "edit:settings"
)

// Permissions lists the full permission universe.
var Permissions = []Permission{
	PermViewTools,
	PermCreateTools,
	PermEditTools,
	PermDeleteTools,
	PermViewUsers,
	PermCreateUsers,
	PermEditUsers,
	PermDeleteUsers,
	PermViewSettings,
	PermEditSettings,
}

// rolePermissions maps each role to its granted set. The sets are
// strictly nested: viewer < editor < admin. New roles must preserve
// that containment.
var rolePermissions = map[models.Role]map[Permission]struct{}{
	models.RoleAdmin: permSet(
		PermViewTools, PermCreateTools, PermEditTools, PermDeleteTools,
		PermViewUsers, PermCreateUsers, PermEditUsers, PermDeleteUsers,
		PermViewSettings, PermEditSettings,
	),
	models.RoleEditor: permSet(
		PermViewTools, PermCreateTools, PermEditTools,
		PermViewUsers,
		PermViewSettings,
	),
	models.RoleViewer: permSet(
		PermViewTools,
		PermViewUsers,
	),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// HasPermission reports whether role holds permission. Unknown roles
// hold the empty set, so the check fails closed.
func HasPermission(role models.Role, permission Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, granted := set[permission]
	return granted
}

// CheckAll reports whether role holds every listed permission. An empty
// list is trivially satisfied.
func CheckAll(role models.Role, permissions []Permission) bool {
	for _, p := range permissions {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

// PermissionsFor returns role's granted permissions in universe order.
// Useful for interfaces that render capability lists.
func PermissionsFor(role models.Role) []Permission {
	set, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, 0, len(set))
	for _, p := range Permissions {
		if _, granted := set[p]; granted {
			out = append(out, p)
		}
	}
	return out
}
