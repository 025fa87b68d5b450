package user

// Role tells which kind of account a token was issued for.
type Role string

const (
	RoleUser     Role = "user"
	RoleBusiness Role = "business"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBusiness:
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
