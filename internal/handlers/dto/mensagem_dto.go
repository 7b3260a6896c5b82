package dto

import (
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/services"
)

// MensagemRequest representa uma mensagem a salvar no histórico
type MensagemRequest struct {
	ConteudoJSON      string `json:"conteudoJson" binding:"required"`
	TextoCompleto     string `json:"textoCompleto" binding:"required,max=1000"`
	Contexto          string `json:"contexto" binding:"max=100"`
	DispositivoOrigem string `json:"dispositivoOrigem" binding:"max=50"`
}

// ToInput converte a requisição para o input do serviço
func (r MensagemRequest) ToInput() services.MensagemInput {
	return services.MensagemInput{
		ConteudoJSON:      r.ConteudoJSON,
		TextoCompleto:     r.TextoCompleto,
		Contexto:          r.Contexto,
		DispositivoOrigem: r.DispositivoOrigem,
	}
}

// MensagemResponse representa uma mensagem do histórico
type MensagemResponse struct {
	ID                int64     `json:"id"`
	ConteudoJSON      string    `json:"conteudoJson"`
	TextoCompleto     string    `json:"textoCompleto"`
	Contexto          string    `json:"contexto,omitempty"`
	UsuarioID         int64     `json:"usuarioId"`
	CriadoEm          time.Time `json:"criadoEm"`
	Favorita          bool      `json:"favorita"`
	VezesReutilizada  int64     `json:"vezesReutilizada"`
	DispositivoOrigem string    `json:"dispositivoOrigem,omitempty"`
}

// ToMensagemResponse converte uma entidade Mensagem
func ToMensagemResponse(m *entities.Mensagem) MensagemResponse {
	return MensagemResponse{
		ID:                m.ID,
		ConteudoJSON:      m.ConteudoJSON,
		TextoCompleto:     m.TextoCompleto,
		Contexto:          m.Contexto,
		UsuarioID:         m.UsuarioID,
		CriadoEm:          m.CriadoEm,
		Favorita:          m.Favorita,
		VezesReutilizada:  m.VezesReutilizada,
		DispositivoOrigem: m.DispositivoOrigem,
	}
}

// ToMensagemResponses converte uma lista de mensagens
func ToMensagemResponses(mensagens []*entities.Mensagem) []MensagemResponse {
	return mapSlice(mensagens, ToMensagemResponse)
}

// ToMensagemPage converte uma página do histórico
func ToMensagemPage(p *services.PaginaMensagens) PageResponse[MensagemResponse] {
	return NewPageResponse(ToMensagemResponses(p.Itens), p.Pagina, p.Tamanho, p.Total)
}

// EstatisticasResponse resume o histórico do usuário
type EstatisticasResponse struct {
	TotalMensagens     int64 `json:"totalMensagens"`
	MensagensNoPeriodo int64 `json:"mensagensNoPeriodo"`
}

// ToEstatisticasResponse converte as estatísticas do serviço
func ToEstatisticasResponse(e *services.Estatisticas) EstatisticasResponse {
	return EstatisticasResponse{
		TotalMensagens:     e.TotalMensagens,
		MensagensNoPeriodo: e.MensagensNoPeriodo,
	}
}
