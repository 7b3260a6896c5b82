package repositories

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// ConfiguracaoRepository define a interface para persistência das preferências
type ConfiguracaoRepository interface {
	FindByUsuario(ctx context.Context, usuarioID int64) (*entities.ConfiguracaoUsuario, error)
	Create(ctx context.Context, configuracao *entities.ConfiguracaoUsuario) error
	Update(ctx context.Context, configuracao *entities.ConfiguracaoUsuario) error
}
