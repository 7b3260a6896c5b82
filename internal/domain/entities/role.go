package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}
