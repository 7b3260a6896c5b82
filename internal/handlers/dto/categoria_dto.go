package dto

import (
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/services"
)

// CategoriaRequest representa a criação ou atualização de uma categoria
type CategoriaRequest struct {
	Nome      string `json:"nome" binding:"required,min=1,max=100"`
	Descricao string `json:"descricao" binding:"max=500"`
	Cor       string `json:"cor" binding:"max=50"`
	Icone     string `json:"icone" binding:"max=50"`
	Ordem     int    `json:"ordem" binding:"gte=0"`
}

// ToInput converte a requisição para o input do serviço
func (r CategoriaRequest) ToInput() services.CategoriaInput {
	return services.CategoriaInput{
		Nome:      r.Nome,
		Descricao: r.Descricao,
		Cor:       r.Cor,
		Icone:     r.Icone,
		Ordem:     r.Ordem,
	}
}

// CategoriaResponse representa uma categoria
type CategoriaResponse struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao,omitempty"`
	Cor          string    `json:"cor"`
	Icone        string    `json:"icone,omitempty"`
	Ativa        bool      `json:"ativa"`
	Padrao       bool      `json:"padrao"`
	Ordem        int       `json:"ordem"`
	UsuarioID    *int64    `json:"usuarioId,omitempty"`
	CriadoEm     time.Time `json:"criadoEm"`
	AtualizadoEm time.Time `json:"atualizadoEm"`
}

// CategoriaComPictogramasResponse inclui os pictogramas visíveis da categoria
type CategoriaComPictogramasResponse struct {
	CategoriaResponse
	Pictogramas []PictogramaResponse `json:"pictogramas"`
}

// ToCategoriaResponse converte uma entidade Categoria
func ToCategoriaResponse(c *entities.Categoria) CategoriaResponse {
	return CategoriaResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		Descricao:    c.Descricao,
		Cor:          c.Cor,
		Icone:        c.Icone,
		Ativa:        c.Ativa,
		Padrao:       c.IsPadrao(),
		Ordem:        c.Ordem,
		UsuarioID:    c.UsuarioID,
		CriadoEm:     c.CriadoEm,
		AtualizadoEm: c.AtualizadoEm,
	}
}

// ToCategoriaResponses converte uma lista de categorias
func ToCategoriaResponses(categorias []*entities.Categoria) []CategoriaResponse {
	return mapSlice(categorias, ToCategoriaResponse)
}

// ToCategoriaComPictogramasResponse converte a categoria com os seus pictogramas
func ToCategoriaComPictogramasResponse(c *entities.Categoria) CategoriaComPictogramasResponse {
	pictogramas := mapSlice(c.Pictogramas, ToPictogramaResponse)
	for i := range pictogramas {
		pictogramas[i].CategoriaNome = c.Nome
	}
	return CategoriaComPictogramasResponse{
		CategoriaResponse: ToCategoriaResponse(c),
		Pictogramas:       pictogramas,
	}
}
