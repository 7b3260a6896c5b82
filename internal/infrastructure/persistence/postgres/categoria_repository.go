package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
)

// CategoriaRepository implementa repositories.CategoriaRepository
type CategoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository cria um novo CategoriaRepository
func NewCategoriaRepository(db *gorm.DB) repositories.CategoriaRepository {
	return &CategoriaRepository{db: db}
}

func (r *CategoriaRepository) Create(ctx context.Context, categoria *entities.Categoria) error {
	model := r.toModel(categoria)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	categoria.ID = model.ID
	categoria.CriadoEm = model.CriadoEm
	categoria.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *CategoriaRepository) Update(ctx context.Context, categoria *entities.Categoria) error {
	model := r.toModel(categoria)
	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return err
	}
	categoria.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *CategoriaRepository) FindByID(ctx context.Context, id int64) (*entities.Categoria, error) {
	var model CategoriaModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CategoriaRepository) ExistsByNomeAndUsuario(ctx context.Context, nome string, usuarioID int64) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&CategoriaModel{}).
		Where("nome = ? AND usuario_id = ?", nome, usuarioID).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoriaRepository) ListDisponiveis(ctx context.Context, usuarioID int64) ([]*entities.Categoria, error) {
	var models []*CategoriaModel

	err := r.getDB(ctx).
		Where("(padrao = ? OR usuario_id = ?) AND ativa = ?", true, usuarioID, true).
		Order("ordem ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *CategoriaRepository) CountAtivasByUsuario(ctx context.Context, usuarioID int64) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&CategoriaModel{}).
		Where("usuario_id = ? AND ativa = ?", usuarioID, true).
		Count(&count).Error
	return count, err
}

// getDB extrai DB do contexto (para suportar transações)
func (r *CategoriaRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *CategoriaRepository) toModel(c *entities.Categoria) *CategoriaModel {
	return &CategoriaModel{
		ID:           c.ID,
		Nome:         c.Nome,
		Descricao:    c.Descricao,
		Cor:          c.Cor,
		Icone:        c.Icone,
		Ativa:        c.Ativa,
		Padrao:       c.Padrao,
		Ordem:        c.Ordem,
		UsuarioID:    c.UsuarioID,
		CriadoEm:     c.CriadoEm,
		AtualizadoEm: c.AtualizadoEm,
	}
}

func (r *CategoriaRepository) toEntity(m *CategoriaModel) *entities.Categoria {
	return &entities.Categoria{
		ID:           m.ID,
		Nome:         m.Nome,
		Descricao:    m.Descricao,
		Cor:          m.Cor,
		Icone:        m.Icone,
		Ativa:        m.Ativa,
		Padrao:       m.Padrao,
		Ordem:        m.Ordem,
		UsuarioID:    m.UsuarioID,
		CriadoEm:     m.CriadoEm,
		AtualizadoEm: m.AtualizadoEm,
	}
}

func (r *CategoriaRepository) toEntities(models []*CategoriaModel) []*entities.Categoria {
	result := make([]*entities.Categoria, 0, len(models))
	for _, m := range models {
		result = append(result, r.toEntity(m))
	}
	return result
}
