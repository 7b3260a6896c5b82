package entities

import "time"

// Mensagem é um registro do histórico de comunicação. CriadoEm é imutável.
type Mensagem struct {
	ID                int64
	ConteudoJSON      string
	TextoCompleto     string
	Contexto          string
	Favorita          bool
	VezesReutilizada  int64
	DispositivoOrigem string
	UsuarioID         int64
	CriadoEm          time.Time
}

func (m *Mensagem) OwnerID() *int64 {
	return &m.UsuarioID
}

// AlternarFavorita inverte a marcação de favorita
func (m *Mensagem) AlternarFavorita() {
	m.Favorita = !m.Favorita
}

// Reutilizar incrementa o contador de reutilização
func (m *Mensagem) Reutilizar() {
	m.VezesReutilizada++
}
