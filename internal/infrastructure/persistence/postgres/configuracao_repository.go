package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// ConfiguracaoRepository implementa repositories.ConfiguracaoRepository
type ConfiguracaoRepository struct {
	db *gorm.DB
}

// NewConfiguracaoRepository cria um novo ConfiguracaoRepository
func NewConfiguracaoRepository(db *gorm.DB) repositories.ConfiguracaoRepository {
	return &ConfiguracaoRepository{db: db}
}

func (r *ConfiguracaoRepository) FindByUsuario(ctx context.Context, usuarioID int64) (*entities.ConfiguracaoUsuario, error) {
	var model ConfiguracaoUsuarioModel

	if err := r.getDB(ctx).Where("usuario_id = ?", usuarioID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ConfiguracaoRepository) Create(ctx context.Context, c *entities.ConfiguracaoUsuario) error {
	model := r.toModel(c)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	c.ID = model.ID
	c.CriadoEm = model.CriadoEm
	c.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *ConfiguracaoRepository) Update(ctx context.Context, c *entities.ConfiguracaoUsuario) error {
	model := r.toModel(c)
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}
	c.AtualizadoEm = model.AtualizadoEm
	return nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ConfiguracaoRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *ConfiguracaoRepository) toModel(c *entities.ConfiguracaoUsuario) *ConfiguracaoUsuarioModel {
	return &ConfiguracaoUsuarioModel{
		ID:                 c.ID,
		UsuarioID:          c.UsuarioID,
		TamanhoPictograma:  string(c.TamanhoPictograma),
		ModoAltoContraste:  c.ModoAltoContraste,
		ModoEscuro:         c.ModoEscuro,
		HabilitarSom:       c.HabilitarSom,
		VelocidadeVoz:      c.VelocidadeVoz,
		IdiomaVoz:          c.IdiomaVoz,
		ModoVarredura:      c.ModoVarredura,
		TempoVarredura:     c.TempoVarredura,
		ConfirmarSelecao:   c.ConfirmarSelecao,
		SalvarHistorico:    c.SalvarHistorico,
		PermitirRelatorios: c.PermitirRelatorios,
		CriadoEm:           c.CriadoEm,
		AtualizadoEm:       c.AtualizadoEm,
	}
}

func (r *ConfiguracaoRepository) toEntity(m *ConfiguracaoUsuarioModel) *entities.ConfiguracaoUsuario {
	return &entities.ConfiguracaoUsuario{
		ID:                 m.ID,
		UsuarioID:          m.UsuarioID,
		TamanhoPictograma:  entities.TamanhoPictograma(m.TamanhoPictograma),
		ModoAltoContraste:  m.ModoAltoContraste,
		ModoEscuro:         m.ModoEscuro,
		HabilitarSom:       m.HabilitarSom,
		VelocidadeVoz:      m.VelocidadeVoz,
		IdiomaVoz:          m.IdiomaVoz,
		ModoVarredura:      m.ModoVarredura,
		TempoVarredura:     m.TempoVarredura,
		ConfirmarSelecao:   m.ConfirmarSelecao,
		SalvarHistorico:    m.SalvarHistorico,
		PermitirRelatorios: m.PermitirRelatorios,
		CriadoEm:           m.CriadoEm,
		AtualizadoEm:       m.AtualizadoEm,
	}
}
