package postgres

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// FraseFavoritaRepository implementa repositories.FraseFavoritaRepository
type FraseFavoritaRepository struct {
	db *gorm.DB
}

// NewFraseFavoritaRepository cria um novo FraseFavoritaRepository
func NewFraseFavoritaRepository(db *gorm.DB) repositories.FraseFavoritaRepository {
	return &FraseFavoritaRepository{db: db}
}

func (r *FraseFavoritaRepository) Create(ctx context.Context, f *entities.FraseFavorita) error {
	model := r.toModel(f)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	f.ID = model.ID
	f.CriadoEm = model.CriadoEm
	f.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *FraseFavoritaRepository) Update(ctx context.Context, f *entities.FraseFavorita) error {
	model := r.toModel(f)
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}
	f.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *FraseFavoritaRepository) FindByID(ctx context.Context, id int64) (*entities.FraseFavorita, error) {
	var model FraseFavoritaModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *FraseFavoritaRepository) ExistsByTituloAndUsuario(ctx context.Context, titulo string, usuarioID int64) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&FraseFavoritaModel{}).
		Where("titulo = ? AND usuario_id = ?", titulo, usuarioID).
		Count(&count).Error
	return count > 0, err
}

func (r *FraseFavoritaRepository) ListAtivasByUsuario(ctx context.Context, usuarioID int64) ([]*entities.FraseFavorita, error) {
	return r.list(ctx, usuarioID, "ordem ASC, id ASC")
}

func (r *FraseFavoritaRepository) ListMaisUsadas(ctx context.Context, usuarioID int64) ([]*entities.FraseFavorita, error) {
	return r.list(ctx, usuarioID, "vezes_usada DESC, id ASC")
}

func (r *FraseFavoritaRepository) list(ctx context.Context, usuarioID int64, order string) ([]*entities.FraseFavorita, error) {
	var models []*FraseFavoritaModel

	err := r.getDB(ctx).
		Where("usuario_id = ? AND ativa = ?", usuarioID, true).
		Order(order).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.FraseFavorita, 0, len(models))
	for _, m := range models {
		result = append(result, r.toEntity(m))
	}
	return result, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *FraseFavoritaRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *FraseFavoritaRepository) toModel(f *entities.FraseFavorita) *FraseFavoritaModel {
	return &FraseFavoritaModel{
		ID:            f.ID,
		Titulo:        f.Titulo,
		ConteudoJSON:  datatypes.JSON(f.ConteudoJSON),
		TextoCompleto: f.TextoCompleto,
		Ativa:         f.Ativa,
		Ordem:         f.Ordem,
		VezesUsada:    f.VezesUsada,
		UsuarioID:     f.UsuarioID,
		CriadoEm:      f.CriadoEm,
		AtualizadoEm:  f.AtualizadoEm,
	}
}

func (r *FraseFavoritaRepository) toEntity(m *FraseFavoritaModel) *entities.FraseFavorita {
	return &entities.FraseFavorita{
		ID:            m.ID,
		Titulo:        m.Titulo,
		ConteudoJSON:  string(m.ConteudoJSON),
		TextoCompleto: m.TextoCompleto,
		Ativa:         m.Ativa,
		Ordem:         m.Ordem,
		VezesUsada:    m.VezesUsada,
		UsuarioID:     m.UsuarioID,
		CriadoEm:      m.CriadoEm,
		AtualizadoEm:  m.AtualizadoEm,
	}
}
