package entity

// Roles válidos para Usuario.
const (
	RoleAdmin     = "admin"
	RoleAtendente = "atendente"
)

// Usuario representa um usuário do sistema (admin ou atendente do PDV).
// Não pode ser removido enquanto houver histórico de estoque referenciando-o.
type Usuario struct {
	ID        int64
	Username  string
	SenhaHash string // hash bcrypt, nunca em texto plano após persistir
	Role      string // admin, atendente
}
