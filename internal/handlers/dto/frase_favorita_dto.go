package dto

import (
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/services"
)

// FraseFavoritaRequest representa a criação ou atualização de uma frase
type FraseFavoritaRequest struct {
	Titulo        string `json:"titulo" binding:"required,min=1,max=100"`
	ConteudoJSON  string `json:"conteudoJson" binding:"required"`
	TextoCompleto string `json:"textoCompleto" binding:"required,max=1000"`
	Ordem         int    `json:"ordem" binding:"gte=0"`
}

// ToInput converte a requisição para o input do serviço
func (r FraseFavoritaRequest) ToInput() services.FraseInput {
	return services.FraseInput{
		Titulo:        r.Titulo,
		ConteudoJSON:  r.ConteudoJSON,
		TextoCompleto: r.TextoCompleto,
		Ordem:         r.Ordem,
	}
}

// FraseFavoritaResponse representa uma frase favorita.
// conteudoJson volta como string, igual ao que o cliente enviou.
type FraseFavoritaResponse struct {
	ID            int64     `json:"id"`
	Titulo        string    `json:"titulo"`
	ConteudoJSON  string    `json:"conteudoJson"`
	TextoCompleto string    `json:"textoCompleto"`
	Ativa         bool      `json:"ativa"`
	Ordem         int       `json:"ordem"`
	VezesUsada    int64     `json:"vezesUsada"`
	UsuarioID     int64     `json:"usuarioId"`
	CriadoEm      time.Time `json:"criadoEm"`
	AtualizadoEm  time.Time `json:"atualizadoEm"`
}

// ToFraseFavoritaResponse converte uma entidade FraseFavorita
func ToFraseFavoritaResponse(f *entities.FraseFavorita) FraseFavoritaResponse {
	return FraseFavoritaResponse{
		ID:            f.ID,
		Titulo:        f.Titulo,
		ConteudoJSON:  f.ConteudoJSON,
		TextoCompleto: f.TextoCompleto,
		Ativa:         f.Ativa,
		Ordem:         f.Ordem,
		VezesUsada:    f.VezesUsada,
		UsuarioID:     f.UsuarioID,
		CriadoEm:      f.CriadoEm,
		AtualizadoEm:  f.AtualizadoEm,
	}
}

// ToFraseFavoritaResponses converte uma lista de frases
func ToFraseFavoritaResponses(frases []*entities.FraseFavorita) []FraseFavoritaResponse {
	return mapSlice(frases, ToFraseFavoritaResponse)
}
