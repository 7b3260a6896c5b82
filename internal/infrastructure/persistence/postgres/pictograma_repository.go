package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// PictogramaRepository implementa repositories.PictogramaRepository
type PictogramaRepository struct {
	db *gorm.DB
}

// NewPictogramaRepository cria um novo PictogramaRepository
func NewPictogramaRepository(db *gorm.DB) repositories.PictogramaRepository {
	return &PictogramaRepository{db: db}
}

func (r *PictogramaRepository) Create(ctx context.Context, p *entities.Pictograma) error {
	model := r.toModel(p)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	p.ID = model.ID
	p.CriadoEm = model.CriadoEm
	p.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *PictogramaRepository) Update(ctx context.Context, p *entities.Pictograma) error {
	model := r.toModel(p)
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}
	p.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *PictogramaRepository) FindByID(ctx context.Context, id int64) (*entities.Pictograma, error) {
	var model PictogramaModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PictogramaRepository) ExistsByLabelAndCategoriaAndUsuario(ctx context.Context, label string, categoriaID, usuarioID int64) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&PictogramaModel{}).
		Where("label = ? AND categoria_id = ? AND usuario_id = ?", label, categoriaID, usuarioID).
		Count(&count).Error
	return count > 0, err
}

func (r *PictogramaRepository) CountAtivosByCategoria(ctx context.Context, categoriaID int64) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&PictogramaModel{}).
		Where("categoria_id = ? AND ativo = ?", categoriaID, true).
		Count(&count).Error
	return count, err
}

func (r *PictogramaRepository) ListDisponiveisByCategoria(ctx context.Context, categoriaID, usuarioID int64) ([]*entities.Pictograma, error) {
	var models []*PictogramaModel

	err := r.getDB(ctx).
		Where("(padrao = ? OR usuario_id = ?) AND ativo = ? AND categoria_id = ?", true, usuarioID, true, categoriaID).
		Order("ordem ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PictogramaRepository) ListMaisUsados(ctx context.Context, usuarioID int64, limit int) ([]*entities.Pictograma, error) {
	var models []*PictogramaModel

	err := r.getDB(ctx).
		Where("usuario_id = ? AND ativo = ?", usuarioID, true).
		Order("vezes_usado DESC, id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PictogramaRepository) Buscar(ctx context.Context, termo string, usuarioID int64) ([]*entities.Pictograma, error) {
	var models []*PictogramaModel

	pattern := likePattern(termo)
	err := r.getDB(ctx).
		Where(`(LOWER(label) LIKE ? ESCAPE '\' OR LOWER(label_alternativo) LIKE ? ESCAPE '\')`, pattern, pattern).
		Where("(padrao = ? OR usuario_id = ?) AND ativo = ?", true, usuarioID, true).
		Order("label ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PictogramaRepository) ListAtivosByUsuario(ctx context.Context, usuarioID int64) ([]*entities.Pictograma, error) {
	var models []*PictogramaModel

	err := r.getDB(ctx).
		Where("usuario_id = ? AND ativo = ?", usuarioID, true).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PictogramaRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *PictogramaRepository) toModel(p *entities.Pictograma) *PictogramaModel {
	return &PictogramaModel{
		ID:               p.ID,
		Label:            p.Label,
		LabelAlternativo: p.LabelAlternativo,
		Cor:              p.Cor,
		Icone:            p.Icone,
		ImagemURL:        p.ImagemURL,
		Tipo:             string(p.Tipo),
		Ativo:            p.Ativo,
		Padrao:           p.Padrao,
		Ordem:            p.Ordem,
		VezesUsado:       p.VezesUsado,
		CategoriaID:      p.CategoriaID,
		UsuarioID:        p.UsuarioID,
		CriadoEm:         p.CriadoEm,
		AtualizadoEm:     p.AtualizadoEm,
	}
}

func (r *PictogramaRepository) toEntity(m *PictogramaModel) *entities.Pictograma {
	return &entities.Pictograma{
		ID:               m.ID,
		Label:            m.Label,
		LabelAlternativo: m.LabelAlternativo,
		Cor:              m.Cor,
		Icone:            m.Icone,
		ImagemURL:        m.ImagemURL,
		Tipo:             entities.TipoPictograma(m.Tipo),
		Ativo:            m.Ativo,
		Padrao:           m.Padrao,
		Ordem:            m.Ordem,
		VezesUsado:       m.VezesUsado,
		CategoriaID:      m.CategoriaID,
		UsuarioID:        m.UsuarioID,
		CriadoEm:         m.CriadoEm,
		AtualizadoEm:     m.AtualizadoEm,
	}
}

func (r *PictogramaRepository) toEntities(models []*PictogramaModel) []*entities.Pictograma {
	result := make([]*entities.Pictograma, 0, len(models))
	for _, m := range models {
		result = append(result, r.toEntity(m))
	}
	return result
}
