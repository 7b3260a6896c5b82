package entities

import "time"

// TipoPictograma define a forma de exibição de um pictograma
type TipoPictograma string

const (
	TipoPadrao TipoPictograma = "PADRAO"
	TipoIcone  TipoPictograma = "ICONE"
	TipoEmoji  TipoPictograma = "EMOJI"
	TipoImagem TipoPictograma = "IMAGEM"
)

// IsValid verifica se o tipo é conhecido
func (t TipoPictograma) IsValid() bool {
	switch t {
	case TipoPadrao, TipoIcone, TipoEmoji, TipoImagem:
		return true
	}
	return false
}

// CorPadraoPictograma é usada quando a categoria não tem cor
const CorPadraoPictograma = "bg-blue-400"

// Pictograma é a unidade básica de comunicação de uma prancha
type Pictograma struct {
	ID               int64
	Label            string
	LabelAlternativo string
	Cor              string
	Icone            string
	ImagemURL        string
	Tipo             TipoPictograma
	Ativo            bool
	Padrao           bool
	Ordem            int
	VezesUsado       int64
	CategoriaID      int64
	UsuarioID        *int64
	CriadoEm         time.Time
	AtualizadoEm     time.Time
}

func (p *Pictograma) OwnerID() *int64 {
	return p.UsuarioID
}

// IsPadrao indica pictograma de sistema
func (p *Pictograma) IsPadrao() bool {
	return p.Padrao || p.UsuarioID == nil
}

// RegistrarUso incrementa o contador de uso. O contador nunca decresce.
func (p *Pictograma) RegistrarUso() {
	p.VezesUsado++
}

// Desativar faz o soft delete do pictograma
func (p *Pictograma) Desativar() {
	p.Ativo = false
}
