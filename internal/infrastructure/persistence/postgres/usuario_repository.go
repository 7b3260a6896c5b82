package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
	"github.com/projetovox/vox-backend/internal/domain/valueobjects"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	usuario.ID = model.ID
	usuario.CriadoEm = model.CriadoEm
	usuario.AtualizadoEm = model.AtualizadoEm
	return nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id int64) (*entities.Usuario, error) {
	var model UsuarioModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := r.getDB(ctx)
	if err := db.Where("email = ?", valueobjects.EmailFromStorage(email).String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *UsuarioRepository) List(ctx context.Context, filters repositories.UsuarioFilters) ([]*entities.Usuario, int64, error) {
	var models []*UsuarioModel

	db := r.getDB(ctx)
	query := db.Model(&UsuarioModel{})

	// Aplicar filtros
	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	offset := (page - 1) * pageSize

	if err := query.Order("id ASC").Limit(pageSize).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	result := make([]*entities.Usuario, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result, total, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UsuarioRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *UsuarioRepository) toModel(usuario *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		ID:           usuario.ID,
		Nome:         usuario.Nome,
		Telefone:     usuario.Telefone,
		Email:        usuario.Email.String(),
		Password:     usuario.PasswordHash,
		Role:         string(usuario.Role),
		CriadoEm:     usuario.CriadoEm,
		AtualizadoEm: usuario.AtualizadoEm,
	}
}

func (r *UsuarioRepository) toEntity(model *UsuarioModel) *entities.Usuario {
	return &entities.Usuario{
		ID:           model.ID,
		Nome:         model.Nome,
		Telefone:     model.Telefone,
		Email:        valueobjects.EmailFromStorage(model.Email),
		PasswordHash: model.Password,
		Role:         entities.Role(model.Role),
		CriadoEm:     model.CriadoEm,
		AtualizadoEm: model.AtualizadoEm,
	}
}

// normalizePage aplica os limites de paginação (página começa em 1; default 20, max 100)
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// likePattern escapa curingas do termo e monta o padrão para LIKE ... ESCAPE '\'
func likePattern(termo string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(termo)) + "%"
}
