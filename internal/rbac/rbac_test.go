package rbac

import (
	"testing"

	"github.com/bright-coral-crab/tooldeck/internal/models"
)

func TestHasPermission_Matrix(t *testing.T) {
	tests := []struct {
		role models.Role
		perm Permission
		want bool
	}{
		{models.RoleAdmin, PermDeleteUsers, true},
		{models.RoleAdmin, PermEditSettings, true},
		{models.RoleEditor, PermViewTools, true},
		{models.RoleEditor, PermCreateTools, true},
		{models.RoleEditor, PermEditTools, true},
		{models.RoleEditor, PermDeleteTools, false},
		{models.RoleEditor, PermCreateUsers, false},
		{models.RoleEditor, PermViewSettings, true},
		{models.RoleEditor, PermEditSettings, false},
		{models.RoleViewer, PermViewTools, true},
		{models.RoleViewer, PermViewUsers, true},
		{models.RoleViewer, PermViewSettings, false},
		{models.RoleViewer, PermEditTools, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.role)+"/"+string(tc.perm), func(t *testing.T) {
			if got := HasPermission(tc.role, tc.perm); got != tc.want {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
			}
		})
	}
}

func TestHasPermission_UnknownRoleFailsClosed(t *testing.T) {
	for _, p := range Permissions {
		if HasPermission("superuser", p) {
			t.Errorf("unknown role granted %q", p)
		}
		if HasPermission("", p) {
			t.Errorf("empty role granted %q", p)
		}
	}
}

func TestHasPermission_UnknownPermission(t *testing.T) {
	if HasPermission(models.RoleAdmin, "fly:tools") {
		t.Error("unknown permission should never be granted")
	}
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name  string
		role  models.Role
		perms []Permission
		want  bool
	}{
		{"empty list", models.RoleViewer, nil, true},
		{"all held", models.RoleEditor, []Permission{PermViewTools, PermEditTools}, true},
		{"one missing", models.RoleEditor, []Permission{PermViewTools, PermDeleteTools}, false},
		{"unknown role", "ghost", []Permission{PermViewTools}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckAll(tc.role, tc.perms); got != tc.want {
				t.Errorf("CheckAll(%q, %v) = %v, want %v", tc.role, tc.perms, got, tc.want)
			}
		})
	}
}

// Role sets must be strictly nested: viewer < editor < admin.
func TestRoleContainment(t *testing.T) {
	subset := func(inner, outer models.Role) bool {
		for _, p := range PermissionsFor(inner) {
			if !HasPermission(outer, p) {
				return false
			}
		}
		return true
	}

	if !subset(models.RoleViewer, models.RoleEditor) {
		t.Error("viewer permissions not contained in editor's")
	}
	if !subset(models.RoleEditor, models.RoleAdmin) {
		t.Error("editor permissions not contained in admin's")
	}
	if len(PermissionsFor(models.RoleViewer)) >= len(PermissionsFor(models.RoleEditor)) {
		t.Error("editor set should be strictly larger than viewer's")
	}
	if len(PermissionsFor(models.RoleEditor)) >= len(PermissionsFor(models.RoleAdmin)) {
		t.Error("admin set should be strictly larger than editor's")
	}
	if len(PermissionsFor(models.RoleAdmin)) != len(Permissions) {
		t.Error("admin should hold the full permission universe")
	}
}
