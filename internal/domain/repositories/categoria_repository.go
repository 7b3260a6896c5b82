package repositories

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// CategoriaRepository define a interface para persistência de categorias
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entities.Categoria) error
	Update(ctx context.Context, categoria *entities.Categoria) error
	// FindByID inclui categorias inativas
	FindByID(ctx context.Context, id int64) (*entities.Categoria, error)
	ExistsByNomeAndUsuario(ctx context.Context, nome string, usuarioID int64) (bool, error)
	// ListDisponiveis retorna padrão + do usuário, ativas, por ordem
	ListDisponiveis(ctx context.Context, usuarioID int64) ([]*entities.Categoria, error)
	CountAtivasByUsuario(ctx context.Context, usuarioID int64) (int64, error)
}
