package services

import (
	"context"
	"time"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// Paginação do histórico
const (
	DefaultTamanhoPagina = 20
	MaxTamanhoPagina     = 100
)

// MensagemService contém a lógica do histórico de mensagens
type MensagemService struct {
	mensagemRepo repositories.MensagemRepository
	usuarioRepo  repositories.UsuarioRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewMensagemService cria um novo MensagemService
func NewMensagemService(
	mensagemRepo repositories.MensagemRepository,
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *MensagemService {
	return &MensagemService{
		mensagemRepo: mensagemRepo,
		usuarioRepo:  usuarioRepo,
		uow:          uow,
		logger:       logger,
	}
}

// MensagemInput representa uma mensagem falada pelo usuário
type MensagemInput struct {
	ConteudoJSON      string
	TextoCompleto     string
	Contexto          string
	DispositivoOrigem string
}

// PaginaMensagens é uma página do histórico. Pagina começa em 1.
type PaginaMensagens struct {
	Itens   []*entities.Mensagem
	Pagina  int
	Tamanho int
	Total   int64
}

// TotalPaginas calcula o número de páginas para o total atual
func (p PaginaMensagens) TotalPaginas() int {
	if p.Tamanho <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Tamanho) - 1) / int64(p.Tamanho))
}

// Estatisticas resume o uso do histórico
type Estatisticas struct {
	TotalMensagens     int64
	MensagensNoPeriodo int64
}

// Salvar grava uma mensagem no histórico
func (s *MensagemService) Salvar(ctx context.Context, input MensagemInput, usuarioID int64) (*entities.Mensagem, error) {
	if err := checkConteudoJSON(input.ConteudoJSON); err != nil {
		return nil, err
	}

	var mensagem *entities.Mensagem
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := requireUsuario(txCtx, s.usuarioRepo, usuarioID); err != nil {
			return err
		}
		mensagem = &entities.Mensagem{
			ConteudoJSON:      input.ConteudoJSON,
			TextoCompleto:     input.TextoCompleto,
			Contexto:          input.Contexto,
			DispositivoOrigem: input.DispositivoOrigem,
			UsuarioID:         usuarioID,
		}
		return s.mensagemRepo.Create(txCtx, mensagem)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("mensagem saved", "mensagem_id", mensagem.ID, "usuario_id", usuarioID)
	return mensagem, nil
}

// Listar retorna uma página do histórico, mais recentes primeiro
func (s *MensagemService) Listar(ctx context.Context, usuarioID int64, pagina, tamanho int) (*PaginaMensagens, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}

	if pagina < 1 {
		pagina = 1
	}
	if tamanho < 1 {
		tamanho = DefaultTamanhoPagina
	}
	if tamanho > MaxTamanhoPagina {
		tamanho = MaxTamanhoPagina
	}

	itens, total, err := s.mensagemRepo.ListByUsuario(ctx, usuarioID, pagina, tamanho)
	if err != nil {
		return nil, err
	}
	return &PaginaMensagens{Itens: itens, Pagina: pagina, Tamanho: tamanho, Total: total}, nil
}

// Favoritas retorna as mensagens marcadas como favoritas
func (s *MensagemService) Favoritas(ctx context.Context, usuarioID int64) ([]*entities.Mensagem, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}
	return s.mensagemRepo.ListFavoritas(ctx, usuarioID)
}

// PorPeriodo retorna as mensagens criadas entre inicio e fim, inclusive
func (s *MensagemService) PorPeriodo(ctx context.Context, usuarioID int64, inicio, fim time.Time) ([]*entities.Mensagem, error) {
	if fim.Before(inicio) {
		return nil, errors.ErrPeriodoInvalido
	}
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}
	return s.mensagemRepo.ListByPeriodo(ctx, usuarioID, inicio, fim)
}

// AlternarFavorita inverte a marcação de favorita
func (s *MensagemService) AlternarFavorita(ctx context.Context, id, usuarioID int64) (*entities.Mensagem, error) {
	return s.mutate(ctx, id, usuarioID, (*entities.Mensagem).AlternarFavorita)
}

// Reutilizar incrementa o contador de reutilização
func (s *MensagemService) Reutilizar(ctx context.Context, id, usuarioID int64) (*entities.Mensagem, error) {
	return s.mutate(ctx, id, usuarioID, (*entities.Mensagem).Reutilizar)
}

// Estatisticas conta o total de mensagens e as do período
func (s *MensagemService) Estatisticas(ctx context.Context, usuarioID int64, inicio, fim time.Time) (*Estatisticas, error) {
	if fim.Before(inicio) {
		return nil, errors.ErrPeriodoInvalido
	}
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}

	total, err := s.mensagemRepo.CountByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	noPeriodo, err := s.mensagemRepo.CountByUsuarioAndPeriodo(ctx, usuarioID, inicio, fim)
	if err != nil {
		return nil, err
	}
	return &Estatisticas{TotalMensagens: total, MensagensNoPeriodo: noPeriodo}, nil
}

func (s *MensagemService) mutate(ctx context.Context, id, usuarioID int64, change func(*entities.Mensagem)) (*entities.Mensagem, error) {
	var mensagem *entities.Mensagem
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		mensagem, err = s.mensagemRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if mensagem == nil {
			return errors.ErrMensagemNotFound
		}
		if !entities.IsOwnedBy(mensagem, usuarioID) {
			return errors.ErrAcessoNegado
		}
		change(mensagem)
		return s.mensagemRepo.Update(txCtx, mensagem)
	})
	if err != nil {
		return nil, err
	}
	return mensagem, nil
}
