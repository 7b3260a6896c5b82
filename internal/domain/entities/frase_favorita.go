package entities

import "time"

// FraseFavorita é uma sequência de pictogramas salva pelo usuário
type FraseFavorita struct {
	ID            int64
	Titulo        string
	ConteudoJSON  string
	TextoCompleto string
	Ativa         bool
	Ordem         int
	VezesUsada    int64
	UsuarioID     int64
	CriadoEm      time.Time
	AtualizadoEm  time.Time
}

func (f *FraseFavorita) OwnerID() *int64 {
	return &f.UsuarioID
}

// RegistrarUso incrementa o contador de uso
func (f *FraseFavorita) RegistrarUso() {
	f.VezesUsada++
}

// Desativar faz o soft delete da frase
func (f *FraseFavorita) Desativar() {
	f.Ativa = false
}
