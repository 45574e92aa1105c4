package user

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProfessional Role = "professional"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProfessional:
		return true
	default:
		return false
	}
}
