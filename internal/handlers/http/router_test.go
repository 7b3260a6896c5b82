package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/projetovox/vox-backend/internal/domain/entities"
	"github.com/projetovox/vox-backend/internal/domain/repositories"
	httphandlers "github.com/projetovox/vox-backend/internal/handlers/http"
	"github.com/projetovox/vox-backend/internal/infrastructure/i18n"
	"github.com/projetovox/vox-backend/internal/infrastructure/logging"
	"github.com/projetovox/vox-backend/internal/infrastructure/metrics"
	"github.com/projetovox/vox-backend/internal/infrastructure/persistence/postgres"
	"github.com/projetovox/vox-backend/internal/infrastructure/token"
	"github.com/projetovox/vox-backend/internal/services"
)

const testSecret = "segredo-de-teste-com-mais-de-32-bytes"

type stubCatalog struct {
	registros map[int64]entities.PictogramaExterno
	available bool
}

func (s *stubCatalog) SearchByKeyword(_ context.Context, keyword string, limit int) []*entities.PictogramaExterno {
	out := []*entities.PictogramaExterno{}
	for id := int64(1); id <= int64(len(s.registros)) && len(out) < limit; id++ {
		r, ok := s.registros[id]
		if ok && strings.Contains(r.Label, keyword) {
			out = append(out, &r)
		}
	}
	return out
}

func (s *stubCatalog) FindByID(_ context.Context, id int64) (*entities.PictogramaExterno, bool) {
	r, ok := s.registros[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (s *stubCatalog) SearchByCategory(ctx context.Context, category string, limit int) []*entities.PictogramaExterno {
	return s.SearchByKeyword(ctx, category, limit)
}

func (s *stubCatalog) IsAvailable(context.Context) bool {
	return s.available
}

type testServer struct {
	router     *gin.Engine
	categorias repositories.CategoriaRepository
	metrics    *metrics.Metrics
	catalog    *stubCatalog
	padrao     *entities.Categoria
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), postgres.GormConfig("silent", logging.NewNopLogger()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(postgres.Models()...))

	logger := logging.NewNopLogger()
	uow := postgres.NewUnitOfWork(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	pictogramaRepo := postgres.NewPictogramaRepository(db)
	fraseRepo := postgres.NewFraseFavoritaRepository(db)
	mensagemRepo := postgres.NewMensagemRepository(db)
	configRepo := postgres.NewConfiguracaoRepository(db)

	padrao := &entities.Categoria{Nome: "Básico", Cor: "bg-green-400", Ativa: true, Padrao: true, Ordem: 1}
	require.NoError(t, categoriaRepo.Create(context.Background(), padrao))

	catalog := &stubCatalog{available: true, registros: map[int64]entities.PictogramaExterno{
		1: {IDExterno: 1, Fonte: entities.FonteARASAAC, Label: "casa", ImagemURL: "https://static.test/1.png"},
		2: {IDExterno: 2, Fonte: entities.FonteARASAAC, Label: "casaco", ImagemURL: "https://static.test/2.png"},
	}}

	tokens, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)
	m := metrics.New()
	i18nService, err := i18n.NewEmbeddedService("pt-BR")
	require.NoError(t, err)

	authService := services.NewAuthService(usuarioRepo, tokens, uow, logger, services.WithHashCost(bcrypt.MinCost))

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            "test",
		BaseURL:        "http://vox.test",
		AllowedOrigins: "*",
		I18n:           i18nService,
		Metrics:        m,
		Authenticator:  authService,
		Logger:         logger,
	}, httphandlers.Handlers{
		Auth:          httphandlers.NewAuthHandler(authService),
		Usuario:       httphandlers.NewUsuarioHandler(services.NewUsuarioService(usuarioRepo, logger)),
		Categoria:     httphandlers.NewCategoriaHandler(services.NewCategoriaService(categoriaRepo, pictogramaRepo, usuarioRepo, uow, logger)),
		Pictograma:    httphandlers.NewPictogramaHandler(services.NewPictogramaService(pictogramaRepo, categoriaRepo, usuarioRepo, uow, logger)),
		FraseFavorita: httphandlers.NewFraseFavoritaHandler(services.NewFraseFavoritaService(fraseRepo, usuarioRepo, uow, logger)),
		Mensagem:      httphandlers.NewMensagemHandler(services.NewMensagemService(mensagemRepo, usuarioRepo, uow, logger)),
		Configuracao:  httphandlers.NewConfiguracaoHandler(services.NewConfiguracaoService(configRepo, usuarioRepo, uow, logger)),
		PictogramaExterno: httphandlers.NewPictogramaExternoHandler(
			services.NewImportacaoService(catalog, pictogramaRepo, categoriaRepo, usuarioRepo, uow, m, logger),
		),
	})

	return &testServer{
		router:     router,
		categorias: categoriaRepo,
		metrics:    m,
		catalog:    catalog,
		padrao:     padrao,
	}
}

type requestOption func(*http.Request)

func withUsuario(id int64) requestOption {
	return func(r *http.Request) {
		r.Header.Set("Usuario-Id", fmt.Sprint(id))
	}
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

func (s *testServer) do(method, path string, body interface{}, opts ...requestOption) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register cria um usuário pela API e devolve o id
func (s *testServer) register(t *testing.T, nome string) int64 {
	t.Helper()
	w := s.do("POST", "/auth/register", map[string]string{
		"nome":  nome,
		"email": strings.ToLower(nome) + "@vox.test",
		"senha": "segredo1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Usuário registrado com sucesso!", resp.Message)
	return resp.UserID
}

type problemBody struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail"`
	Instance string            `json:"instance"`
	Error    string            `json:"error"`
	Message  string            `json:"message"`
	Path     string            `json:"path"`
	Errors   map[string]string `json:"errors"`
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) problemBody {
	t.Helper()
	assert.Contains(t, w.Header().Get("Content-Type"), problems.ProblemMediaType)
	var p problemBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p), w.Body.String())
	return p
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do("GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestUsuarioIDHeader(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{"ausente", ""},
		{"não numérico", "abc"},
		{"zero", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []requestOption
			if tt.header != "" {
				opts = append(opts, withHeader("Usuario-Id", tt.header))
			}

			w := s.do("GET", "/api/categorias", nil, opts...)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			p := decodeProblem(t, w)
			assert.Equal(t, "VALIDATION_FAILED", p.Error)
			assert.Equal(t, http.StatusBadRequest, p.Status)
			assert.Equal(t, "http://vox.test/problems/validation-error", p.Type)
			assert.Equal(t, "/api/categorias", p.Path)
		})
	}
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Ana")

	t.Run("email duplicado é regra de negócio", func(t *testing.T) {
		w := s.do("POST", "/auth/register", map[string]string{
			"nome": "Outra", "email": "ana@vox.test", "senha": "segredo1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BUSINESS_RULE_VIOLATION", decodeProblem(t, w).Error)
	})

	t.Run("senha curta é validação", func(t *testing.T) {
		w := s.do("POST", "/auth/register", map[string]string{
			"nome": "Bia", "email": "bia@vox.test", "senha": "123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeProblem(t, w).Errors, "senha")
	})

	t.Run("senha errada", func(t *testing.T) {
		w := s.do("POST", "/auth/login", map[string]string{"email": "ana@vox.test", "senha": "errada"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeProblem(t, w).Error)
	})

	t.Run("email desconhecido", func(t *testing.T) {
		w := s.do("POST", "/auth/login", map[string]string{"email": "ninguem@vox.test", "senha": "segredo1"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("login por username e /auth/me", func(t *testing.T) {
		w := s.do("POST", "/auth/login", map[string]string{"username": "ana@vox.test", "password": "segredo1"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		tok := decode[map[string]string](t, w)
		assert.Equal(t, "Bearer", tok["tipo"])

		w = s.do("GET", "/auth/me", nil, withHeader("Authorization", "Bearer "+tok["token"]))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ana", decode[map[string]interface{}](t, w)["nome"])
	})

	t.Run("/auth/me sem token", func(t *testing.T) {
		w := s.do("GET", "/auth/me", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCategorias(t *testing.T) {
	s := newTestServer(t)
	uid := s.register(t, "Ana")

	w := s.do("POST", "/api/categorias", map[string]interface{}{"nome": "Escola"}, withUsuario(uid))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	escola := decode[map[string]interface{}](t, w)
	assert.Equal(t, float64(1), escola["ordem"])

	w = s.do("POST", "/api/categorias", map[string]interface{}{"nome": "Casa"}, withUsuario(uid))
	require.Equal(t, http.StatusCreated, w.Code)
	casa := decode[map[string]interface{}](t, w)

	t.Run("nome obrigatório", func(t *testing.T) {
		w := s.do("POST", "/api/categorias", map[string]interface{}{}, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeProblem(t, w).Errors, "nome")
	})

	t.Run("JSON malformado", func(t *testing.T) {
		w := s.do("POST", "/api/categorias", `{"nome":`, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeProblem(t, w).Errors, "body")
	})

	t.Run("lista padrão e pessoais", func(t *testing.T) {
		w := s.do("GET", "/api/categorias", nil, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]interface{}](t, w), 3)
	})

	t.Run("reordenar", func(t *testing.T) {
		ids := []int64{int64(casa["id"].(float64)), int64(escola["id"].(float64))}
		w := s.do("PUT", "/api/categorias/reordenar", ids, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		c, err := s.categorias.FindByID(context.Background(), ids[0])
		require.NoError(t, err)
		assert.Equal(t, 1, c.Ordem)
	})

	t.Run("padrão não é editável", func(t *testing.T) {
		w := s.do("DELETE", fmt.Sprintf("/api/categorias/%d", s.padrao.ID), nil, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BUSINESS_RULE_VIOLATION", decodeProblem(t, w).Error)
	})

	t.Run("id inválido", func(t *testing.T) {
		w := s.do("GET", "/api/categorias/abc", nil, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("inexistente", func(t *testing.T) {
		w := s.do("GET", "/api/categorias/999", nil, withUsuario(uid))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decodeProblem(t, w).Error)
	})

	t.Run("desativar", func(t *testing.T) {
		w := s.do("DELETE", fmt.Sprintf("/api/categorias/%d", int64(escola["id"].(float64))), nil, withUsuario(uid))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPictogramas(t *testing.T) {
	s := newTestServer(t)
	uid := s.register(t, "Ana")

	w := s.do("POST", "/api/pictogramas", map[string]interface{}{
		"label":       "água",
		"categoriaId": s.padrao.ID,
	}, withUsuario(uid))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	agua := decode[map[string]interface{}](t, w)
	assert.Equal(t, "bg-green-400", agua["cor"])
	assert.Equal(t, "PADRAO", agua["tipo"])
	id := int64(agua["id"].(float64))

	t.Run("usar dispensa Usuario-Id", func(t *testing.T) {
		w := s.do("POST", fmt.Sprintf("/api/pictogramas/%d/usar", id), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("mais usados", func(t *testing.T) {
		w := s.do("GET", "/api/pictogramas/mais-usados?limite=5", nil, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code)
		lista := decode[[]map[string]interface{}](t, w)
		require.Len(t, lista, 1)
		assert.Equal(t, float64(1), lista[0]["vezesUsado"])
	})

	t.Run("limite fora da faixa", func(t *testing.T) {
		w := s.do("GET", "/api/pictogramas/mais-usados?limite=0", nil, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeProblem(t, w).Errors, "limite")
	})

	t.Run("tipo inválido", func(t *testing.T) {
		w := s.do("POST", "/api/pictogramas", map[string]interface{}{
			"label": "x", "categoriaId": s.padrao.ID, "tipo": "GIF",
		}, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeProblem(t, w).Errors, "tipo")
	})

	t.Run("buscar", func(t *testing.T) {
		w := s.do("GET", "/api/pictogramas/buscar?termo=GUA", nil, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]interface{}](t, w), 1)
	})
}

func TestMensagens(t *testing.T) {
	s := newTestServer(t)
	uid := s.register(t, "Ana")

	for i := range 3 {
		w := s.do("POST", "/api/mensagens", map[string]interface{}{
			"conteudoJson":  `["eu","quero"]`,
			"textoCompleto": fmt.Sprintf("eu quero %d", i),
		}, withUsuario(uid))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	t.Run("conteúdo JSON inválido", func(t *testing.T) {
		w := s.do("POST", "/api/mensagens", map[string]interface{}{
			"conteudoJson": "{quebrado", "textoCompleto": "x",
		}, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("página", func(t *testing.T) {
		w := s.do("GET", "/api/mensagens?page=2&size=2", nil, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code)
		page := decode[struct {
			Conteudo       []map[string]interface{} `json:"conteudo"`
			TotalElementos int64                    `json:"totalElementos"`
			TotalPaginas   int                      `json:"totalPaginas"`
		}](t, w)
		assert.Len(t, page.Conteudo, 1)
		assert.EqualValues(t, 3, page.TotalElementos)
		assert.Equal(t, 2, page.TotalPaginas)
	})

	t.Run("período malformado", func(t *testing.T) {
		w := s.do("GET", "/api/mensagens/periodo?inicio=ontem&fim=hoje", nil, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("estatísticas", func(t *testing.T) {
		inicio := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
		fim := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
		w := s.do("GET", "/api/mensagens/estatisticas?inicio="+inicio+"&fim="+fim, nil, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		stats := decode[map[string]int64](t, w)
		assert.EqualValues(t, 3, stats["totalMensagens"])
		assert.EqualValues(t, 3, stats["mensagensNoPeriodo"])
	})
}

func TestConfiguracoes(t *testing.T) {
	s := newTestServer(t)
	uid := s.register(t, "Ana")

	w := s.do("GET", "/api/configuracoes", nil, withUsuario(uid))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MEDIO", decode[map[string]interface{}](t, w)["tamanhoPictograma"])

	w = s.do("PUT", "/api/configuracoes", map[string]interface{}{"modoEscuro": true}, withUsuario(uid))
	require.Equal(t, http.StatusOK, w.Code)
	cfg := decode[map[string]interface{}](t, w)
	assert.Equal(t, true, cfg["modoEscuro"])
	assert.Equal(t, "MEDIO", cfg["tamanhoPictograma"])

	w = s.do("PUT", "/api/configuracoes", map[string]interface{}{"tempoVarredura": 20}, withUsuario(uid))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "deve estar entre 1 e 10", decodeProblem(t, w).Errors["tempoVarredura"])

	w = s.do("POST", "/api/configuracoes/resetar", nil, withUsuario(uid))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, w)["modoEscuro"])
}

func TestPictogramasExternos(t *testing.T) {
	s := newTestServer(t)
	uid := s.register(t, "Ana")

	t.Run("status", func(t *testing.T) {
		w := s.do("GET", "/api/pictogramas-externos/status", nil)
		require.Equal(t, http.StatusOK, w.Code)
		st := decode[map[string]interface{}](t, w)
		assert.Equal(t, true, st["disponivel"])
		assert.Equal(t, "ARASAAC", st["fonte"])
		assert.Equal(t, "API ARASAAC disponível", st["mensagem"])
	})

	t.Run("status em inglês", func(t *testing.T) {
		s.catalog.available = false
		defer func() { s.catalog.available = true }()

		w := s.do("GET", "/api/pictogramas-externos/status", nil, withHeader("Accept-Language", "en-US,en;q=0.9"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ARASAAC API currently unavailable", decode[map[string]interface{}](t, w)["mensagem"])
	})

	t.Run("importar e marcar na busca", func(t *testing.T) {
		w := s.do("POST", "/api/pictogramas-externos/importar", map[string]interface{}{
			"idExterno": 1, "categoriaId": s.padrao.ID,
		}, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "casa", decode[map[string]interface{}](t, w)["label"])

		w = s.do("POST", "/api/pictogramas-externos/importar", map[string]interface{}{
			"idExterno": 1, "categoriaId": s.padrao.ID,
		}, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = s.do("GET", "/api/pictogramas-externos/buscar?palavra=casa", nil, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code)
		lista := decode[[]map[string]interface{}](t, w)
		require.Len(t, lista, 2)
		assert.Equal(t, true, lista[0]["importado"])
		assert.Equal(t, false, lista[1]["importado"])
	})

	t.Run("buscar exige palavra", func(t *testing.T) {
		w := s.do("GET", "/api/pictogramas-externos/buscar", nil, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeProblem(t, w).Errors, "palavra")
	})

	t.Run("sugerir com texto vazio devolve lista vazia", func(t *testing.T) {
		for _, texto := range []string{"", "%20%20", "a%20ok"} {
			w := s.do("GET", "/api/pictogramas-externos/sugerir?texto="+texto, nil, withUsuario(uid))
			require.Equal(t, http.StatusOK, w.Code, texto)
			assert.JSONEq(t, "[]", w.Body.String(), texto)
		}
	})

	t.Run("sugerir exige o parâmetro texto", func(t *testing.T) {
		w := s.do("GET", "/api/pictogramas-externos/sugerir", nil, withUsuario(uid))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeProblem(t, w).Errors, "texto")
	})

	t.Run("por id sem Usuario-Id", func(t *testing.T) {
		w := s.do("GET", "/api/pictogramas-externos/2", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decode[map[string]interface{}](t, w)["importado"])

		w = s.do("GET", "/api/pictogramas-externos/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("lote pula falhas", func(t *testing.T) {
		w := s.do("POST", "/api/pictogramas-externos/importar-lote", []map[string]interface{}{
			{"idExterno": 2, "categoriaId": s.padrao.ID},
			{"idExterno": 99, "categoriaId": s.padrao.ID},
		}, withUsuario(uid))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resumo := decode[map[string]interface{}](t, w)
		assert.Equal(t, float64(2), resumo["totalSolicitado"])
		assert.Equal(t, float64(1), resumo["totalImportado"])
		assert.Equal(t, float64(1), resumo["totalFalhas"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do("GET", "/health", nil)

	w := s.do("GET", "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "vox_http_requests_total")
}
