package services

import (
	"context"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// ConfiguracaoService gerencia as preferências de acessibilidade do usuário
type ConfiguracaoService struct {
	configRepo  repositories.ConfiguracaoRepository
	usuarioRepo repositories.UsuarioRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewConfiguracaoService cria um novo ConfiguracaoService
func NewConfiguracaoService(
	configRepo repositories.ConfiguracaoRepository,
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ConfiguracaoService {
	return &ConfiguracaoService{
		configRepo:  configRepo,
		usuarioRepo: usuarioRepo,
		uow:         uow,
		logger:      logger,
	}
}

// ConfiguracaoInput traz as preferências a alterar. Campos nil ficam como estão.
type ConfiguracaoInput struct {
	TamanhoPictograma  *entities.TamanhoPictograma
	ModoAltoContraste  *bool
	ModoEscuro         *bool
	HabilitarSom       *bool
	VelocidadeVoz      *float64
	IdiomaVoz          *string
	ModoVarredura      *bool
	TempoVarredura     *int
	ConfirmarSelecao   *bool
	SalvarHistorico    *bool
	PermitirRelatorios *bool
}

// Obter retorna a configuração do usuário, criando a padrão no primeiro acesso
func (s *ConfiguracaoService) Obter(ctx context.Context, usuarioID int64) (*entities.ConfiguracaoUsuario, error) {
	var config *entities.ConfiguracaoUsuario
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		config, err = s.obterOuCriar(txCtx, usuarioID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Atualizar aplica os campos informados e valida os intervalos
func (s *ConfiguracaoService) Atualizar(ctx context.Context, input ConfiguracaoInput, usuarioID int64) (*entities.ConfiguracaoUsuario, error) {
	var config *entities.ConfiguracaoUsuario
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		config, err = s.obterOuCriar(txCtx, usuarioID)
		if err != nil {
			return err
		}

		input.applyTo(config)
		if err := config.Validate(); err != nil {
			return err
		}
		return s.configRepo.Update(txCtx, config)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("configuracao updated", "usuario_id", usuarioID)
	return config, nil
}

// Resetar restaura as preferências padrão
func (s *ConfiguracaoService) Resetar(ctx context.Context, usuarioID int64) (*entities.ConfiguracaoUsuario, error) {
	var config *entities.ConfiguracaoUsuario
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		config, err = s.obterOuCriar(txCtx, usuarioID)
		if err != nil {
			return err
		}
		config.Resetar()
		return s.configRepo.Update(txCtx, config)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("configuracao reset", "usuario_id", usuarioID)
	return config, nil
}

func (s *ConfiguracaoService) obterOuCriar(ctx context.Context, usuarioID int64) (*entities.ConfiguracaoUsuario, error) {
	if _, err := requireUsuario(ctx, s.usuarioRepo, usuarioID); err != nil {
		return nil, err
	}

	config, err := s.configRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	config = entities.NewConfiguracaoPadrao(usuarioID)
	if err := s.configRepo.Create(ctx, config); err != nil {
		return nil, err
	}
	s.logger.Info("configuracao created with defaults", "usuario_id", usuarioID)
	return config, nil
}

func (in ConfiguracaoInput) applyTo(c *entities.ConfiguracaoUsuario) {
	if in.TamanhoPictograma != nil {
		c.TamanhoPictograma = *in.TamanhoPictograma
	}
	if in.ModoAltoContraste != nil {
		c.ModoAltoContraste = *in.ModoAltoContraste
	}
	if in.ModoEscuro != nil {
		c.ModoEscuro = *in.ModoEscuro
	}
	if in.HabilitarSom != nil {
		c.HabilitarSom = *in.HabilitarSom
	}
	if in.VelocidadeVoz != nil {
		c.VelocidadeVoz = *in.VelocidadeVoz
	}
	if in.IdiomaVoz != nil {
		c.IdiomaVoz = *in.IdiomaVoz
	}
	if in.ModoVarredura != nil {
		c.ModoVarredura = *in.ModoVarredura
	}
	if in.TempoVarredura != nil {
		c.TempoVarredura = *in.TempoVarredura
	}
	if in.ConfirmarSelecao != nil {
		c.ConfirmarSelecao = *in.ConfirmarSelecao
	}
	if in.SalvarHistorico != nil {
		c.SalvarHistorico = *in.SalvarHistorico
	}
	if in.PermitirRelatorios != nil {
		c.PermitirRelatorios = *in.PermitirRelatorios
	}
}
