package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// MensagemRepository implementa repositories.MensagemRepository
type MensagemRepository struct {
	db *gorm.DB
}

// NewMensagemRepository cria um novo MensagemRepository
func NewMensagemRepository(db *gorm.DB) repositories.MensagemRepository {
	return &MensagemRepository{db: db}
}

func (r *MensagemRepository) Create(ctx context.Context, m *entities.Mensagem) error {
	model := r.toModel(m)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	m.ID = model.ID
	m.CriadoEm = model.CriadoEm
	return nil
}

// Update nunca altera criado_em
func (r *MensagemRepository) Update(ctx context.Context, m *entities.Mensagem) error {
	return r.getDB(ctx).Model(&MensagemModel{ID: m.ID}).Updates(map[string]interface{}{
		"conteudo_json":      datatypes.JSON(m.ConteudoJSON),
		"texto_completo":     m.TextoCompleto,
		"contexto":           m.Contexto,
		"favorita":           m.Favorita,
		"vezes_reutilizada":  m.VezesReutilizada,
		"dispositivo_origem": m.DispositivoOrigem,
	}).Error
}

func (r *MensagemRepository) FindByID(ctx context.Context, id int64) (*entities.Mensagem, error) {
	var model MensagemModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *MensagemRepository) ListByUsuario(ctx context.Context, usuarioID int64, page, pageSize int) ([]*entities.Mensagem, int64, error) {
	var models []*MensagemModel

	query := r.getDB(ctx).Model(&MensagemModel{}).Where("usuario_id = ?", usuarioID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	err := query.
		Order("criado_em DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return r.toEntities(models), total, nil
}

func (r *MensagemRepository) ListFavoritas(ctx context.Context, usuarioID int64) ([]*entities.Mensagem, error) {
	var models []*MensagemModel

	err := r.getDB(ctx).
		Where("usuario_id = ? AND favorita = ?", usuarioID, true).
		Order("criado_em DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *MensagemRepository) ListByPeriodo(ctx context.Context, usuarioID int64, inicio, fim time.Time) ([]*entities.Mensagem, error) {
	var models []*MensagemModel

	err := r.getDB(ctx).
		Where("usuario_id = ? AND criado_em BETWEEN ? AND ?", usuarioID, inicio.UTC(), fim.UTC()).
		Order("criado_em DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *MensagemRepository) CountByUsuario(ctx context.Context, usuarioID int64) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&MensagemModel{}).
		Where("usuario_id = ?", usuarioID).
		Count(&count).Error
	return count, err
}

func (r *MensagemRepository) CountByUsuarioAndPeriodo(ctx context.Context, usuarioID int64, inicio, fim time.Time) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&MensagemModel{}).
		Where("usuario_id = ? AND criado_em BETWEEN ? AND ?", usuarioID, inicio.UTC(), fim.UTC()).
		Count(&count).Error
	return count, err
}

// getDB extrai DB do contexto (para suportar transações)
func (r *MensagemRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *MensagemRepository) toModel(m *entities.Mensagem) *MensagemModel {
	return &MensagemModel{
		ID:                m.ID,
		ConteudoJSON:      datatypes.JSON(m.ConteudoJSON),
		TextoCompleto:     m.TextoCompleto,
		Contexto:          m.Contexto,
		Favorita:          m.Favorita,
		VezesReutilizada:  m.VezesReutilizada,
		DispositivoOrigem: m.DispositivoOrigem,
		UsuarioID:         m.UsuarioID,
		CriadoEm:          m.CriadoEm,
	}
}

func (r *MensagemRepository) toEntity(m *MensagemModel) *entities.Mensagem {
	return &entities.Mensagem{
		ID:                m.ID,
		ConteudoJSON:      string(m.ConteudoJSON),
		TextoCompleto:     m.TextoCompleto,
		Contexto:          m.Contexto,
		Favorita:          m.Favorita,
		VezesReutilizada:  m.VezesReutilizada,
		DispositivoOrigem: m.DispositivoOrigem,
		UsuarioID:         m.UsuarioID,
		CriadoEm:          m.CriadoEm,
	}
}

func (r *MensagemRepository) toEntities(models []*MensagemModel) []*entities.Mensagem {
	result := make([]*entities.Mensagem, 0, len(models))
	for _, m := range models {
		result = append(result, r.toEntity(m))
	}
	return result
}
