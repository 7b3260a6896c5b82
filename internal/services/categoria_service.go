package services

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// CategoriaService contém a lógica de negócio de categorias
type CategoriaService struct {
	categoriaRepo  repositories.CategoriaRepository
	pictogramaRepo repositories.PictogramaRepository
	usuarioRepo    repositories.UsuarioRepository
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewCategoriaService cria um novo CategoriaService
func NewCategoriaService(
	categoriaRepo repositories.CategoriaRepository,
	pictogramaRepo repositories.PictogramaRepository,
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CategoriaService {
	return &CategoriaService{
		categoriaRepo:  categoriaRepo,
		pictogramaRepo: pictogramaRepo,
		usuarioRepo:    usuarioRepo,
		uow:            uow,
		logger:         logger,
	}
}

// CategoriaInput representa os campos editáveis de uma categoria.
// Ordem <= 0 significa "não informada".
type CategoriaInput struct {
	Nome      string
	Descricao string
	Cor       string
	Icone     string
	Ordem     int
}

// Criar cria uma categoria pessoal. Sem ordem, vai para o fim da lista do usuário.
func (s *CategoriaService) Criar(ctx context.Context, input CategoriaInput, usuarioID int64) (*entities.Categoria, error) {
	s.logger.Info("creating categoria", "nome", input.Nome, "usuario_id", usuarioID)

	var categoria *entities.Categoria
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := requireUsuario(txCtx, s.usuarioRepo, usuarioID); err != nil {
			return err
		}

		exists, err := s.categoriaRepo.ExistsByNomeAndUsuario(txCtx, input.Nome, usuarioID)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrCategoriaDuplicada.WithParams(map[string]interface{}{"Nome": input.Nome})
		}

		ordem := input.Ordem
		if ordem <= 0 {
			count, err := s.categoriaRepo.CountAtivasByUsuario(txCtx, usuarioID)
			if err != nil {
				return err
			}
			ordem = int(count) + 1
		}

		owner := usuarioID
		categoria = &entities.Categoria{
			Nome:      input.Nome,
			Descricao: input.Descricao,
			Cor:       input.Cor,
			Icone:     input.Icone,
			Ativa:     true,
			Padrao:    false,
			Ordem:     ordem,
			UsuarioID: &owner,
		}
		return s.categoriaRepo.Create(txCtx, categoria)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("categoria created", "categoria_id", categoria.ID)
	return categoria, nil
}

// ListarDisponiveis retorna as categorias padrão e as do usuário, ativas, por ordem
func (s *CategoriaService) ListarDisponiveis(ctx context.Context, usuarioID int64) ([]*entities.Categoria, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}
	return s.categoriaRepo.ListDisponiveis(ctx, usuarioID)
}

// BuscarComPictogramas retorna a categoria com os pictogramas visíveis ao usuário
func (s *CategoriaService) BuscarComPictogramas(ctx context.Context, id, usuarioID int64) (*entities.Categoria, error) {
	categoria, err := requireCategoria(ctx, s.categoriaRepo, id)
	if err != nil {
		return nil, err
	}
	if !categoria.IsPadrao() && !entities.IsOwnedBy(categoria, usuarioID) {
		return nil, errors.ErrAcessoNegado
	}

	pictogramas, err := s.pictogramaRepo.ListDisponiveisByCategoria(ctx, id, usuarioID)
	if err != nil {
		return nil, err
	}
	categoria.Pictogramas = pictogramas
	return categoria, nil
}

// Atualizar altera uma categoria do próprio usuário
func (s *CategoriaService) Atualizar(ctx context.Context, id int64, input CategoriaInput, usuarioID int64) (*entities.Categoria, error) {
	var categoria *entities.Categoria
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		categoria, err = requireCategoria(txCtx, s.categoriaRepo, id)
		if err != nil {
			return err
		}
		if err := checkEditavel(categoria, categoria.IsPadrao(), usuarioID); err != nil {
			return err
		}

		if input.Nome != categoria.Nome {
			exists, err := s.categoriaRepo.ExistsByNomeAndUsuario(txCtx, input.Nome, usuarioID)
			if err != nil {
				return err
			}
			if exists {
				return errors.ErrCategoriaDuplicada.WithParams(map[string]interface{}{"Nome": input.Nome})
			}
		}

		categoria.Nome = input.Nome
		categoria.Descricao = input.Descricao
		categoria.Cor = input.Cor
		categoria.Icone = input.Icone
		if input.Ordem > 0 {
			categoria.Ordem = input.Ordem
		}
		return s.categoriaRepo.Update(txCtx, categoria)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("categoria updated", "categoria_id", id)
	return categoria, nil
}

// Desativar faz a exclusão lógica de uma categoria do próprio usuário
func (s *CategoriaService) Desativar(ctx context.Context, id, usuarioID int64) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		categoria, err := requireCategoria(txCtx, s.categoriaRepo, id)
		if err != nil {
			return err
		}
		if err := checkEditavel(categoria, categoria.IsPadrao(), usuarioID); err != nil {
			return err
		}

		categoria.Desativar()
		return s.categoriaRepo.Update(txCtx, categoria)
	})
	if err != nil {
		return err
	}

	s.logger.Info("categoria deactivated", "categoria_id", id)
	return nil
}

// Reordenar grava a ordem 1..n conforme a posição de cada id na lista.
// Categorias padrão e de outros usuários são ignoradas.
func (s *CategoriaService) Reordenar(ctx context.Context, ids []int64, usuarioID int64) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		updated, err := reordenar(txCtx, ids, usuarioID,
			func(ctx context.Context, id int64) (*entities.Categoria, bool, error) {
				c, err := s.categoriaRepo.FindByID(ctx, id)
				return c, c != nil, err
			},
			func(ctx context.Context, c *entities.Categoria, ordem int) error {
				c.Ordem = ordem
				return s.categoriaRepo.Update(ctx, c)
			},
		)
		if err != nil {
			return err
		}
		s.logger.Info("categorias reordered", "usuario_id", usuarioID, "requested", len(ids), "updated", updated)
		return nil
	})
}
