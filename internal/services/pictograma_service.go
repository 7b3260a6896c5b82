package services

import (
	"context"
	"strings"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// DefaultLimiteMaisUsados é o tamanho padrão da lista de mais usados
const DefaultLimiteMaisUsados = 10

// PictogramaService contém a lógica de negócio de pictogramas
type PictogramaService struct {
	pictogramaRepo repositories.PictogramaRepository
	categoriaRepo  repositories.CategoriaRepository
	usuarioRepo    repositories.UsuarioRepository
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewPictogramaService cria um novo PictogramaService
func NewPictogramaService(
	pictogramaRepo repositories.PictogramaRepository,
	categoriaRepo repositories.CategoriaRepository,
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PictogramaService {
	return &PictogramaService{
		pictogramaRepo: pictogramaRepo,
		categoriaRepo:  categoriaRepo,
		usuarioRepo:    usuarioRepo,
		uow:            uow,
		logger:         logger,
	}
}

// PictogramaInput representa os campos de um pictograma.
// Tipo vazio vira PADRAO na criação. CategoriaID é ignorado na atualização.
type PictogramaInput struct {
	Label            string
	LabelAlternativo string
	Cor              string
	Icone            string
	ImagemURL        string
	Tipo             entities.TipoPictograma
	Ordem            int
	CategoriaID      int64
}

// Criar cria um pictograma pessoal numa categoria visível ao usuário
func (s *PictogramaService) Criar(ctx context.Context, input PictogramaInput, usuarioID int64) (*entities.Pictograma, error) {
	s.logger.Info("creating pictograma", "label", input.Label, "categoria_id", input.CategoriaID, "usuario_id", usuarioID)

	var pictograma *entities.Pictograma
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := requireUsuario(txCtx, s.usuarioRepo, usuarioID); err != nil {
			return err
		}
		categoria, err := requireCategoria(txCtx, s.categoriaRepo, input.CategoriaID)
		if err != nil {
			return err
		}
		if !categoria.IsPadrao() && !entities.IsOwnedBy(categoria, usuarioID) {
			return errors.ErrAcessoNegado
		}

		exists, err := s.pictogramaRepo.ExistsByLabelAndCategoriaAndUsuario(txCtx, input.Label, input.CategoriaID, usuarioID)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrPictogramaDuplicado.WithParams(map[string]interface{}{"Label": input.Label})
		}

		ordem := input.Ordem
		if ordem <= 0 {
			count, err := s.pictogramaRepo.CountAtivosByCategoria(txCtx, input.CategoriaID)
			if err != nil {
				return err
			}
			ordem = int(count) + 1
		}

		tipo := input.Tipo
		if tipo == "" {
			tipo = entities.TipoPadrao
		}

		owner := usuarioID
		pictograma = &entities.Pictograma{
			Label:            input.Label,
			LabelAlternativo: input.LabelAlternativo,
			Cor:              corOuPadrao(input.Cor, categoria.Cor),
			Icone:            input.Icone,
			ImagemURL:        input.ImagemURL,
			Tipo:             tipo,
			Ativo:            true,
			Padrao:           false,
			Ordem:            ordem,
			CategoriaID:      input.CategoriaID,
			UsuarioID:        &owner,
		}
		return s.pictogramaRepo.Create(txCtx, pictograma)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pictograma created", "pictograma_id", pictograma.ID)
	return pictograma, nil
}

// ListarPorCategoria retorna os pictogramas padrão e do usuário de uma categoria
func (s *PictogramaService) ListarPorCategoria(ctx context.Context, categoriaID, usuarioID int64) ([]*entities.Pictograma, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}
	if _, err := requireCategoria(ctx, s.categoriaRepo, categoriaID); err != nil {
		return nil, err
	}
	return s.pictogramaRepo.ListDisponiveisByCategoria(ctx, categoriaID, usuarioID)
}

// MaisUsados retorna os pictogramas do usuário mais usados, até limite
func (s *PictogramaService) MaisUsados(ctx context.Context, usuarioID int64, limite int) ([]*entities.Pictograma, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}
	if limite <= 0 {
		limite = DefaultLimiteMaisUsados
	}
	return s.pictogramaRepo.ListMaisUsados(ctx, usuarioID, limite)
}

// Buscar procura pictogramas visíveis ao usuário pelo termo
func (s *PictogramaService) Buscar(ctx context.Context, termo string, usuarioID int64) ([]*entities.Pictograma, error) {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return []*entities.Pictograma{}, nil
	}
	return s.pictogramaRepo.Buscar(ctx, termo, usuarioID)
}

// BuscarPorID busca um pictograma, ativo ou não
func (s *PictogramaService) BuscarPorID(ctx context.Context, id int64) (*entities.Pictograma, error) {
	pictograma, err := s.pictogramaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pictograma == nil {
		return nil, errors.ErrPictogramaNotFound
	}
	return pictograma, nil
}

// Atualizar altera um pictograma do próprio usuário. A categoria não muda.
func (s *PictogramaService) Atualizar(ctx context.Context, id int64, input PictogramaInput, usuarioID int64) (*entities.Pictograma, error) {
	var pictograma *entities.Pictograma
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		pictograma, err = s.BuscarPorID(txCtx, id)
		if err != nil {
			return err
		}
		if err := checkEditavel(pictograma, pictograma.IsPadrao(), usuarioID); err != nil {
			return err
		}

		if input.Label != pictograma.Label {
			exists, err := s.pictogramaRepo.ExistsByLabelAndCategoriaAndUsuario(txCtx, input.Label, pictograma.CategoriaID, usuarioID)
			if err != nil {
				return err
			}
			if exists {
				return errors.ErrPictogramaDuplicado.WithParams(map[string]interface{}{"Label": input.Label})
			}
		}

		pictograma.Label = input.Label
		pictograma.LabelAlternativo = input.LabelAlternativo
		if input.Cor != "" {
			pictograma.Cor = input.Cor
		}
		pictograma.Icone = input.Icone
		pictograma.ImagemURL = input.ImagemURL
		if input.Tipo != "" {
			pictograma.Tipo = input.Tipo
		}
		if input.Ordem > 0 {
			pictograma.Ordem = input.Ordem
		}
		return s.pictogramaRepo.Update(txCtx, pictograma)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pictograma updated", "pictograma_id", id)
	return pictograma, nil
}

// RegistrarUso incrementa o contador de uso. Vale também para pictogramas padrão.
func (s *PictogramaService) RegistrarUso(ctx context.Context, id int64) (*entities.Pictograma, error) {
	var pictograma *entities.Pictograma
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		pictograma, err = s.BuscarPorID(txCtx, id)
		if err != nil {
			return err
		}
		pictograma.RegistrarUso()
		return s.pictogramaRepo.Update(txCtx, pictograma)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("pictograma used", "pictograma_id", id, "vezes_usado", pictograma.VezesUsado)
	return pictograma, nil
}

// Desativar faz a exclusão lógica de um pictograma do próprio usuário
func (s *PictogramaService) Desativar(ctx context.Context, id, usuarioID int64) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		pictograma, err := s.BuscarPorID(txCtx, id)
		if err != nil {
			return err
		}
		if err := checkEditavel(pictograma, pictograma.IsPadrao(), usuarioID); err != nil {
			return err
		}

		pictograma.Desativar()
		return s.pictogramaRepo.Update(txCtx, pictograma)
	})
	if err != nil {
		return err
	}

	s.logger.Info("pictograma deactivated", "pictograma_id", id)
	return nil
}

// corOuPadrao escolhe a cor informada, depois a da categoria, depois a padrão
func corOuPadrao(cores ...string) string {
	for _, cor := range cores {
		if cor != "" {
			return cor
		}
	}
	return entities.CorPadraoPictograma
}
