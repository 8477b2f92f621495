package authorization

// UserRole is the flat RBAC role assigned to each user.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSupervisor UserRole = "supervisor"
	RoleEngineer   UserRole = "engineer"
	RoleTechnician UserRole = "technician"
	RoleViewer     UserRole = "viewer"
)

var validRoles = map[UserRole]bool{
	RoleAdmin:      true,
	RoleSupervisor: true,
	RoleEngineer:   true,
	RoleTechnician: true,
	RoleViewer:     true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsSupervisor reports whether the role carries supervisor privileges.
// Admins supervise implicitly.
func (r UserRole) IsSupervisor() bool {
	return r == RoleAdmin || r == RoleSupervisor
}

// IsEngineer reports whether the role carries engineer privileges or above.
func (r UserRole) IsEngineer() bool {
	return r == RoleAdmin || r == RoleSupervisor || r == RoleEngineer
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleViewer
}
