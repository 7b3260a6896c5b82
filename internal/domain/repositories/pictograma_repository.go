package repositories

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// PictogramaRepository define a interface para persistência de pictogramas
type PictogramaRepository interface {
	Create(ctx context.Context, pictograma *entities.Pictograma) error
	Update(ctx context.Context, pictograma *entities.Pictograma) error
	// FindByID inclui pictogramas inativos
	FindByID(ctx context.Context, id int64) (*entities.Pictograma, error)
	ExistsByLabelAndCategoriaAndUsuario(ctx context.Context, label string, categoriaID, usuarioID int64) (bool, error)
	CountAtivosByCategoria(ctx context.Context, categoriaID int64) (int64, error)
	// ListDisponiveisByCategoria retorna padrão + do usuário, ativos, por ordem
	ListDisponiveisByCategoria(ctx context.Context, categoriaID, usuarioID int64) ([]*entities.Pictograma, error)
	ListMaisUsados(ctx context.Context, usuarioID int64, limit int) ([]*entities.Pictograma, error)
	// Buscar procura termo em label e labelAlternativo, sem diferenciar maiúsculas
	Buscar(ctx context.Context, termo string, usuarioID int64) ([]*entities.Pictograma, error)
	ListAtivosByUsuario(ctx context.Context, usuarioID int64) ([]*entities.Pictograma, error)
}
