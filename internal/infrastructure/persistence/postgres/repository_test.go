package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/valueobjects"
	"github.com/projetovox/vox-backend/internal/infrastructure/logging"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), GormConfig("silent", logging.NewNopLogger()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

func novoUsuario(t *testing.T, email string) *entities.Usuario {
	t.Helper()
	e, err := valueobjects.NewEmail(email)
	require.NoError(t, err)
	return &entities.Usuario{Nome: "Teste", Email: e, PasswordHash: "x", Role: entities.RoleUser}
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		termo    string
		expected string
	}{
		{"Casa", "%casa%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.termo, func(t *testing.T) {
			assert.Equal(t, tt.expected, likePattern(tt.termo))
		})
	}
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("erro desfaz a transação", func(t *testing.T) {
		db := openTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewUsuarioRepository(db)
		falha := errors.New("falha")

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			require.NoError(t, repo.Create(txCtx, novoUsuario(t, "ana@vox.test")))
			return falha
		})

		assert.ErrorIs(t, err, falha)
		u, err := repo.FindByEmail(ctx, "ana@vox.test")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("chamada aninhada usa a transação externa", func(t *testing.T) {
		db := openTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewUsuarioRepository(db)

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := uow.WithTransaction(txCtx, func(inner context.Context) error {
				return repo.Create(inner, novoUsuario(t, "bia@vox.test"))
			}); err != nil {
				return err
			}
			return errors.New("desfaz tudo")
		})

		require.Error(t, err)
		u, err := repo.FindByEmail(ctx, "bia@vox.test")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("sucesso confirma", func(t *testing.T) {
		db := openTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewUsuarioRepository(db)

		require.NoError(t, uow.WithTransaction(ctx, func(txCtx context.Context) error {
			return repo.Create(txCtx, novoUsuario(t, "caio@vox.test"))
		}))

		u, err := repo.FindByEmail(ctx, "caio@vox.test")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "caio@vox.test", u.Email.String())
	})
}

func TestPictogramaRepository_Buscar(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	usuarios := NewUsuarioRepository(db)
	categorias := NewCategoriaRepository(db)
	pictogramas := NewPictogramaRepository(db)

	ana := novoUsuario(t, "ana@vox.test")
	require.NoError(t, usuarios.Create(ctx, ana))
	bia := novoUsuario(t, "bia@vox.test")
	require.NoError(t, usuarios.Create(ctx, bia))

	cat := &entities.Categoria{Nome: "Geral", Cor: "bg-green-400", Ativa: true, Padrao: true, Ordem: 1}
	require.NoError(t, categorias.Create(ctx, cat))

	criar := func(label string, owner *int64, ativo bool) {
		p := &entities.Pictograma{
			Label: label, Cor: "bg-blue-400", Tipo: entities.TipoPadrao, Ativo: ativo,
			Padrao: owner == nil, Ordem: 1, CategoriaID: cat.ID, UsuarioID: owner,
		}
		require.NoError(t, pictogramas.Create(ctx, p))
	}
	criar("Casa", nil, true)
	criar("casa da ana", &ana.ID, true)
	criar("casa da bia", &bia.ID, true)
	criar("casa antiga", &ana.ID, false)
	criar("100% casa", &ana.ID, true)

	t.Run("padrão e próprios ativos", func(t *testing.T) {
		result, err := pictogramas.Buscar(ctx, "CASA", ana.ID)
		require.NoError(t, err)

		labels := make([]string, 0, len(result))
		for _, p := range result {
			labels = append(labels, p.Label)
		}
		assert.ElementsMatch(t, []string{"Casa", "casa da ana", "100% casa"}, labels)
	})

	t.Run("curinga do LIKE é literal", func(t *testing.T) {
		result, err := pictogramas.Buscar(ctx, "0%", ana.ID)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "100% casa", result[0].Label)
	})
}
