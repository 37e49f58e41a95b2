package user

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleSalarie Role = "salarie"
	RoleOther   Role = "other"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSalarie, RoleOther:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role may act on reservations owned by others.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
