package dto

import (
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/services"
)

// ConfiguracaoRequest traz as preferências a alterar. Campos ausentes ficam como estão.
type ConfiguracaoRequest struct {
	TamanhoPictograma  *string  `json:"tamanhoPictograma" binding:"omitempty,oneof=PEQUENO MEDIO GRANDE"`
	ModoAltoContraste  *bool    `json:"modoAltoContraste"`
	ModoEscuro         *bool    `json:"modoEscuro"`
	HabilitarSom       *bool    `json:"habilitarSom"`
	VelocidadeVoz      *float64 `json:"velocidadeVoz" binding:"omitempty,gte=0,lte=2"`
	IdiomaVoz          *string  `json:"idiomaVoz" binding:"omitempty,max=10"`
	ModoVarredura      *bool    `json:"modoVarredura"`
	TempoVarredura     *int     `json:"tempoVarredura" binding:"omitempty,gte=1,lte=10"`
	ConfirmarSelecao   *bool    `json:"confirmarSelecao"`
	SalvarHistorico    *bool    `json:"salvarHistorico"`
	PermitirRelatorios *bool    `json:"permitirRelatorios"`
}

// ToInput converte a requisição para o input do serviço
func (r ConfiguracaoRequest) ToInput() services.ConfiguracaoInput {
	var tamanho *entities.TamanhoPictograma
	if r.TamanhoPictograma != nil {
		t := entities.TamanhoPictograma(*r.TamanhoPictograma)
		tamanho = &t
	}
	return services.ConfiguracaoInput{
		TamanhoPictograma:  tamanho,
		ModoAltoContraste:  r.ModoAltoContraste,
		ModoEscuro:         r.ModoEscuro,
		HabilitarSom:       r.HabilitarSom,
		VelocidadeVoz:      r.VelocidadeVoz,
		IdiomaVoz:          r.IdiomaVoz,
		ModoVarredura:      r.ModoVarredura,
		TempoVarredura:     r.TempoVarredura,
		ConfirmarSelecao:   r.ConfirmarSelecao,
		SalvarHistorico:    r.SalvarHistorico,
		PermitirRelatorios: r.PermitirRelatorios,
	}
}

// ConfiguracaoResponse representa as preferências do usuário
type ConfiguracaoResponse struct {
	ID                 int64     `json:"id"`
	UsuarioID          int64     `json:"usuarioId"`
	TamanhoPictograma  string    `json:"tamanhoPictograma"`
	ModoAltoContraste  bool      `json:"modoAltoContraste"`
	ModoEscuro         bool      `json:"modoEscuro"`
	HabilitarSom       bool      `json:"habilitarSom"`
	VelocidadeVoz      float64   `json:"velocidadeVoz"`
	IdiomaVoz          string    `json:"idiomaVoz"`
	ModoVarredura      bool      `json:"modoVarredura"`
	TempoVarredura     int       `json:"tempoVarredura"`
	ConfirmarSelecao   bool      `json:"confirmarSelecao"`
	SalvarHistorico    bool      `json:"salvarHistorico"`
	PermitirRelatorios bool      `json:"permitirRelatorios"`
	AtualizadoEm       time.Time `json:"atualizadoEm"`
}

// ToConfiguracaoResponse converte a entidade ConfiguracaoUsuario
func ToConfiguracaoResponse(c *entities.ConfiguracaoUsuario) ConfiguracaoResponse {
	return ConfiguracaoResponse{
		ID:                 c.ID,
		UsuarioID:          c.UsuarioID,
		TamanhoPictograma:  string(c.TamanhoPictograma),
		ModoAltoContraste:  c.ModoAltoContraste,
		ModoEscuro:         c.ModoEscuro,
		HabilitarSom:       c.HabilitarSom,
		VelocidadeVoz:      c.VelocidadeVoz,
		IdiomaVoz:          c.IdiomaVoz,
		ModoVarredura:      c.ModoVarredura,
		TempoVarredura:     c.TempoVarredura,
		ConfirmarSelecao:   c.ConfirmarSelecao,
		SalvarHistorico:    c.SalvarHistorico,
		PermitirRelatorios: c.PermitirRelatorios,
		AtualizadoEm:       c.AtualizadoEm,
	}
}
