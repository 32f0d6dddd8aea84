package authorization

type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleAdmin   UserRole = "ADMIN"
	RoleCaterer UserRole = "CATERER"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsCaterer() bool {
	return r == RoleCaterer
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleCaterer
}

func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}
