package entities

import "time"

// Categoria agrupa pictogramas. UsuarioID nil indica categoria padrão do sistema.
type Categoria struct {
	ID           int64
	Nome         string
	Descricao    string
	Cor          string
	Icone        string
	Ativa        bool
	Padrao       bool
	Ordem        int
	UsuarioID    *int64
	CriadoEm     time.Time
	AtualizadoEm time.Time

	// Pictogramas só é preenchido em consultas que pedem a categoria completa
	Pictogramas []*Pictograma
}

func (c *Categoria) OwnerID() *int64 {
	return c.UsuarioID
}

// IsPadrao indica categoria de sistema, que nunca é editável por usuários
func (c *Categoria) IsPadrao() bool {
	return c.Padrao || c.UsuarioID == nil
}

// Desativar faz o soft delete da categoria
func (c *Categoria) Desativar() {
	c.Ativa = false
}
