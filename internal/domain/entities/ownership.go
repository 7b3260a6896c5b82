package entities

// Owned é implementado pelas entidades que pertencem a um usuário.
// OwnerID nil significa entidade padrão do sistema.
type Owned interface {
	OwnerID() *int64
}

// IsOwnedBy é o único predicado de posse usado antes de qualquer mutação
func IsOwnedBy(o Owned, usuarioID int64) bool {
	id := o.OwnerID()
	return id != nil && *id == usuarioID
}
