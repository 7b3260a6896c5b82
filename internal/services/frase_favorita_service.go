package services

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// FraseFavoritaService contém a lógica de negócio das frases favoritas
type FraseFavoritaService struct {
	fraseRepo   repositories.FraseFavoritaRepository
	usuarioRepo repositories.UsuarioRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewFraseFavoritaService cria um novo FraseFavoritaService
func NewFraseFavoritaService(
	fraseRepo repositories.FraseFavoritaRepository,
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *FraseFavoritaService {
	return &FraseFavoritaService{
		fraseRepo:   fraseRepo,
		usuarioRepo: usuarioRepo,
		uow:         uow,
		logger:      logger,
	}
}

// FraseInput representa os campos de uma frase favorita
type FraseInput struct {
	Titulo        string
	ConteudoJSON  string
	TextoCompleto string
	Ordem         int
}

// Criar salva uma nova frase. O título é único por usuário.
func (s *FraseFavoritaService) Criar(ctx context.Context, input FraseInput, usuarioID int64) (*entities.FraseFavorita, error) {
	if err := checkConteudoJSON(input.ConteudoJSON); err != nil {
		return nil, err
	}

	var frase *entities.FraseFavorita
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := requireUsuario(txCtx, s.usuarioRepo, usuarioID); err != nil {
			return err
		}

		exists, err := s.fraseRepo.ExistsByTituloAndUsuario(txCtx, input.Titulo, usuarioID)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrFraseDuplicada.WithParams(map[string]interface{}{"Titulo": input.Titulo})
		}

		frase = &entities.FraseFavorita{
			Titulo:        input.Titulo,
			ConteudoJSON:  input.ConteudoJSON,
			TextoCompleto: input.TextoCompleto,
			Ativa:         true,
			Ordem:         input.Ordem,
			UsuarioID:     usuarioID,
		}
		return s.fraseRepo.Create(txCtx, frase)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("frase favorita created", "frase_id", frase.ID, "usuario_id", usuarioID)
	return frase, nil
}

// Listar retorna as frases ativas do usuário por ordem
func (s *FraseFavoritaService) Listar(ctx context.Context, usuarioID int64) ([]*entities.FraseFavorita, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}
	return s.fraseRepo.ListAtivasByUsuario(ctx, usuarioID)
}

// MaisUsadas retorna as frases ativas do usuário por vezesUsada decrescente
func (s *FraseFavoritaService) MaisUsadas(ctx context.Context, usuarioID int64) ([]*entities.FraseFavorita, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}
	return s.fraseRepo.ListMaisUsadas(ctx, usuarioID)
}

// Atualizar altera uma frase do próprio usuário
func (s *FraseFavoritaService) Atualizar(ctx context.Context, id int64, input FraseInput, usuarioID int64) (*entities.FraseFavorita, error) {
	if err := checkConteudoJSON(input.ConteudoJSON); err != nil {
		return nil, err
	}

	var frase *entities.FraseFavorita
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		frase, err = s.findOwned(txCtx, id, usuarioID)
		if err != nil {
			return err
		}

		if input.Titulo != frase.Titulo {
			exists, err := s.fraseRepo.ExistsByTituloAndUsuario(txCtx, input.Titulo, usuarioID)
			if err != nil {
				return err
			}
			if exists {
				return errors.ErrFraseDuplicada.WithParams(map[string]interface{}{"Titulo": input.Titulo})
			}
		}

		frase.Titulo = input.Titulo
		frase.ConteudoJSON = input.ConteudoJSON
		frase.TextoCompleto = input.TextoCompleto
		if input.Ordem > 0 {
			frase.Ordem = input.Ordem
		}
		return s.fraseRepo.Update(txCtx, frase)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("frase favorita updated", "frase_id", id)
	return frase, nil
}

// RegistrarUso incrementa o contador de uso de uma frase do usuário
func (s *FraseFavoritaService) RegistrarUso(ctx context.Context, id, usuarioID int64) (*entities.FraseFavorita, error) {
	var frase *entities.FraseFavorita
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		frase, err = s.findOwned(txCtx, id, usuarioID)
		if err != nil {
			return err
		}
		frase.RegistrarUso()
		return s.fraseRepo.Update(txCtx, frase)
	})
	if err != nil {
		return nil, err
	}
	return frase, nil
}

// Desativar faz a exclusão lógica de uma frase do usuário
func (s *FraseFavoritaService) Desativar(ctx context.Context, id, usuarioID int64) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		frase, err := s.findOwned(txCtx, id, usuarioID)
		if err != nil {
			return err
		}
		frase.Desativar()
		return s.fraseRepo.Update(txCtx, frase)
	})
	if err != nil {
		return err
	}

	s.logger.Info("frase favorita deactivated", "frase_id", id)
	return nil
}

// Reordenar grava a ordem 1..n conforme a posição de cada id na lista
func (s *FraseFavoritaService) Reordenar(ctx context.Context, ids []int64, usuarioID int64) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		updated, err := reordenar(txCtx, ids, usuarioID,
			func(ctx context.Context, id int64) (*entities.FraseFavorita, bool, error) {
				f, err := s.fraseRepo.FindByID(ctx, id)
				return f, f != nil, err
			},
			func(ctx context.Context, f *entities.FraseFavorita, ordem int) error {
				f.Ordem = ordem
				return s.fraseRepo.Update(ctx, f)
			},
		)
		if err != nil {
			return err
		}
		s.logger.Info("frases reordered", "usuario_id", usuarioID, "requested", len(ids), "updated", updated)
		return nil
	})
}

func (s *FraseFavoritaService) findOwned(ctx context.Context, id, usuarioID int64) (*entities.FraseFavorita, error) {
	frase, err := s.fraseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if frase == nil {
		return nil, errors.ErrFraseNotFound
	}
	if !entities.IsOwnedBy(frase, usuarioID) {
		return nil, errors.ErrAcessoNegado
	}
	return frase, nil
}
