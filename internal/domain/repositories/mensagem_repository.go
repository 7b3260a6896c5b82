package repositories

import (
	"context"
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
)

// MensagemRepository define a interface para persistência do histórico de mensagens
type MensagemRepository interface {
	Create(ctx context.Context, mensagem *entities.Mensagem) error
	Update(ctx context.Context, mensagem *entities.Mensagem) error
	FindByID(ctx context.Context, id int64) (*entities.Mensagem, error)
	// ListByUsuario retorna a página pedida (mais recentes primeiro) e o total
	ListByUsuario(ctx context.Context, usuarioID int64, page, pageSize int) ([]*entities.Mensagem, int64, error)
	ListFavoritas(ctx context.Context, usuarioID int64) ([]*entities.Mensagem, error)
	ListByPeriodo(ctx context.Context, usuarioID int64, inicio, fim time.Time) ([]*entities.Mensagem, error)
	CountByUsuario(ctx context.Context, usuarioID int64) (int64, error)
	CountByUsuarioAndPeriodo(ctx context.Context, usuarioID int64, inicio, fim time.Time) (int64, error)
}
