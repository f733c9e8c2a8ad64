package user

type Role string

const (
	RoleSales      Role = "sales"
	RoleMarketing  Role = "marketing"
	RoleManagement Role = "management"
	RoleReception  Role = "reception"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSales, RoleMarketing, RoleManagement, RoleReception:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
