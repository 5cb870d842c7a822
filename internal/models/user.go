package models

// Role represents a caller's permission level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ParseRole converts a string to Role. Unknown values map to the empty
// role, which holds no permissions.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "editor":
		return RoleEditor
	case "viewer":
		return RoleViewer
	default:
		return ""
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

// UserStatus is a user's account state.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// ParseUserStatus converts a string to UserStatus.
func ParseUserStatus(s string) UserStatus {
	switch s {
	case "active":
		return StatusActive
	case "inactive":
		return StatusInactive
	default:
		return ""
	}
}

// Valid reports whether s is a known status.
func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// LastLoginNever is the sentinel for users that have never signed in.
const LastLoginNever = "-"

// User represents a managed account. ID is generated at creation time
// and never changes.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	LastLogin string     `json:"lastLogin"`
	CreatedAt string     `json:"createdAt"`
}

// NewUser creates a user draft with the viewer defaults used by the
// admin interface.
func NewUser() User {
	return User{
		Role:      RoleViewer,
		Status:    StatusActive,
		LastLogin: LastLoginNever,
	}
}
