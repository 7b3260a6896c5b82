package dto

import (
	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/services"
)

// ImportarRequest identifica o pictograma externo e a categoria de destino
type ImportarRequest struct {
	IDExterno   int64 `json:"idExterno" binding:"required,gt=0"`
	CategoriaID int64 `json:"categoriaId" binding:"required,gt=0"`
	Colorido    bool  `json:"colorido"`
}

// ToInput converte a requisição para o input do serviço
func (r ImportarRequest) ToInput() services.ImportarInput {
	return services.ImportarInput{
		IDExterno:   r.IDExterno,
		CategoriaID: r.CategoriaID,
		Colorido:    r.Colorido,
	}
}

// ImportarLoteResponse resume uma importação em lote
type ImportarLoteResponse struct {
	TotalSolicitado int                  `json:"totalSolicitado"`
	TotalImportado  int                  `json:"totalImportado"`
	TotalFalhas     int                  `json:"totalFalhas"`
	Pictogramas     []PictogramaResponse `json:"pictogramas"`
}

// NewImportarLoteResponse monta o resumo a partir do total pedido e dos importados
func NewImportarLoteResponse(solicitados int, importados []*entities.Pictograma) ImportarLoteResponse {
	return ImportarLoteResponse{
		TotalSolicitado: solicitados,
		TotalImportado:  len(importados),
		TotalFalhas:     solicitados - len(importados),
		Pictogramas:     ToPictogramaResponses(importados),
	}
}

// StatusCatalogoResponse informa a disponibilidade do catálogo externo
type StatusCatalogoResponse struct {
	Disponivel bool   `json:"disponivel"`
	Fonte      string `json:"fonte"`
	Mensagem   string `json:"mensagem"`
}

// PictogramaExternoResponse é o próprio PictogramaExterno, que já tem tags JSON
type PictogramaExternoResponse = entities.PictogramaExterno

// ToPictogramaExternoResponses garante lista vazia em vez de null
func ToPictogramaExternoResponses(externos []*entities.PictogramaExterno) []*PictogramaExternoResponse {
	if externos == nil {
		return []*PictogramaExternoResponse{}
	}
	return externos
}
