package repositories

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// FraseFavoritaRepository define a interface para persistência de frases favoritas
type FraseFavoritaRepository interface {
	Create(ctx context.Context, frase *entities.FraseFavorita) error
	Update(ctx context.Context, frase *entities.FraseFavorita) error
	FindByID(ctx context.Context, id int64) (*entities.FraseFavorita, error)
	ExistsByTituloAndUsuario(ctx context.Context, titulo string, usuarioID int64) (bool, error)
	ListAtivasByUsuario(ctx context.Context, usuarioID int64) ([]*entities.FraseFavorita, error)
	ListMaisUsadas(ctx context.Context, usuarioID int64) ([]*entities.FraseFavorita, error)
}
