package dto

import (
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/services"
)

// PictogramaRequest representa a criação ou atualização de um pictograma.
// Na atualização categoriaId é ignorado.
type PictogramaRequest struct {
	Label            string `json:"label" binding:"required,min=1,max=100"`
	LabelAlternativo string `json:"labelAlternativo" binding:"max=200"`
	Cor              string `json:"cor" binding:"max=50"`
	Icone            string `json:"icone" binding:"max=100"`
	ImagemURL        string `json:"imagemUrl" binding:"max=1000"`
	Tipo             string `json:"tipo" binding:"omitempty,oneof=PADRAO ICONE EMOJI IMAGEM"`
	Ordem            int    `json:"ordem" binding:"gte=0"`
	CategoriaID      int64  `json:"categoriaId" binding:"gte=0"`
}

// ToInput converte a requisição para o input do serviço
func (r PictogramaRequest) ToInput() services.PictogramaInput {
	return services.PictogramaInput{
		Label:            r.Label,
		LabelAlternativo: r.LabelAlternativo,
		Cor:              r.Cor,
		Icone:            r.Icone,
		ImagemURL:        r.ImagemURL,
		Tipo:             entities.TipoPictograma(r.Tipo),
		Ordem:            r.Ordem,
		CategoriaID:      r.CategoriaID,
	}
}

// PictogramaResponse representa um pictograma
type PictogramaResponse struct {
	ID               int64     `json:"id"`
	Label            string    `json:"label"`
	LabelAlternativo string    `json:"labelAlternativo,omitempty"`
	Cor              string    `json:"cor"`
	Icone            string    `json:"icone,omitempty"`
	ImagemURL        string    `json:"imagemUrl,omitempty"`
	Tipo             string    `json:"tipo"`
	Ativo            bool      `json:"ativo"`
	Padrao           bool      `json:"padrao"`
	Ordem            int       `json:"ordem"`
	VezesUsado       int64     `json:"vezesUsado"`
	CategoriaID      int64     `json:"categoriaId"`
	CategoriaNome    string    `json:"categoriaNome,omitempty"`
	UsuarioID        *int64    `json:"usuarioId,omitempty"`
	CriadoEm         time.Time `json:"criadoEm"`
	AtualizadoEm     time.Time `json:"atualizadoEm"`
}

// ToPictogramaResponse converte uma entidade Pictograma
func ToPictogramaResponse(p *entities.Pictograma) PictogramaResponse {
	return PictogramaResponse{
		ID:               p.ID,
		Label:            p.Label,
		LabelAlternativo: p.LabelAlternativo,
		Cor:              p.Cor,
		Icone:            p.Icone,
		ImagemURL:        p.ImagemURL,
		Tipo:             string(p.Tipo),
		Ativo:            p.Ativo,
		Padrao:           p.IsPadrao(),
		Ordem:            p.Ordem,
		VezesUsado:       p.VezesUsado,
		CategoriaID:      p.CategoriaID,
		UsuarioID:        p.UsuarioID,
		CriadoEm:         p.CriadoEm,
		AtualizadoEm:     p.AtualizadoEm,
	}
}

// ToPictogramaResponses converte uma lista de pictogramas
func ToPictogramaResponses(pictogramas []*entities.Pictograma) []PictogramaResponse {
	return mapSlice(pictogramas, ToPictogramaResponse)
}
