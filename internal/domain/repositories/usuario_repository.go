package repositories

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários.
// Buscas retornam (nil, nil) quando o registro não existe.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entities.Usuario) error
	FindByID(ctx context.Context, id int64) (*entities.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	Update(ctx context.Context, usuario *entities.Usuario) error
	List(ctx context.Context, filters UsuarioFilters) ([]*entities.Usuario, int64, error)
}

// UsuarioFilters contém filtros para listagem de usuários
type UsuarioFilters struct {
	Role     *entities.Role
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}
