package ports

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// PictogramCatalog é o gateway para o catálogo externo de pictogramas.
// Falhas de rede nunca sobem como erro: viram lista vazia ou ausência.
type PictogramCatalog interface {
	SearchByKeyword(ctx context.Context, keyword string, limit int) []*entities.PictogramaExterno
	FindByID(ctx context.Context, id int64) (*entities.PictogramaExterno, bool)
	SearchByCategory(ctx context.Context, category string, limit int) []*entities.PictogramaExterno
	IsAvailable(ctx context.Context) bool
}
