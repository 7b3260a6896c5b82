package services

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// UsuarioService contém as consultas de usuários
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
	logger      ports.Logger
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepository,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		logger:      logger,
	}
}

// GetUsuario busca um usuário por ID
func (s *UsuarioService) GetUsuario(ctx context.Context, id int64) (*entities.Usuario, error) {
	return requireUsuario(ctx, s.usuarioRepo, id)
}

// ListUsuarios lista usuários com filtros e retorna também o total
func (s *UsuarioService) ListUsuarios(ctx context.Context, filters repositories.UsuarioFilters) ([]*entities.Usuario, int64, error) {
	s.logger.Debug("listing usuarios", "page", filters.Page, "page_size", filters.PageSize)
	return s.usuarioRepo.List(ctx, filters)
}
