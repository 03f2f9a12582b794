package domain

import "fmt"

// Role enumerates dashboard access levels. Roles carry no hierarchy;
// permission is always an exact set-membership check.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleDepartmentHead Role = "Department Head"
	RoleSupervisor     Role = "Supervisor"
	RoleVolunteer      Role = "Volunteer"
	RoleSubscriber     Role = "Subscriber"
)

// AllRoles lists every valid role in a stable order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDepartmentHead, RoleSupervisor, RoleVolunteer, RoleSubscriber}
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleDepartmentHead, RoleSupervisor, RoleVolunteer, RoleSubscriber:
		return Role(raw), nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// In reports whether r is an element of the allowed set.
func (r Role) In(allowed ...Role) bool {
	for _, candidate := range allowed {
		if r == candidate {
			return true
		}
	}
	return false
}
