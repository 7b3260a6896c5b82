package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/projetovox/vox-backend/internal/domain/errors"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/handlers/dto"
	"github.com/projetovox/vox-backend/internal/handlers/middleware"
	"github.com/projetovox/vox-backend/internal/infrastructure/i18n"
	"github.com/projetovox/vox-backend/internal/infrastructure/metrics"
)

// RouterConfig reúne as dependências transversais do roteador
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	I18n           *i18n.Service
	Metrics        *metrics.Metrics
	Authenticator  middleware.Authenticator
	Logger         ports.Logger
}

// Handlers agrupa os handlers de cada recurso
type Handlers struct {
	Auth              *AuthHandler
	Usuario           *UsuarioHandler
	Categoria         *CategoriaHandler
	Pictograma        *PictogramaHandler
	FraseFavorita     *FraseFavoritaHandler
	Mensagem          *MensagemHandler
	Configuracao      *ConfiguracaoHandler
	PictogramaExterno *PictogramaExternoHandler
}

// NewRouter monta o engine gin com middlewares e rotas
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterJSONFieldNames()

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		cfg.Logger.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		dto.WriteError(c, errors.Unexpected(fmt.Errorf("panic: %v", recovered)))
	}))

	// Base URL para os URIs RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.Language(cfg.I18n))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Metrics(cfg.Metrics))
	router.Use(middleware.OptionalAuth(cfg.Authenticator, cfg.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", h.Auth.Me)
	}

	api := router.Group("/api")
	{
		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("", h.Usuario.ListUsuarios)
			usuarios.GET("/:id", h.Usuario.GetUsuario)
		}

		categorias := api.Group("/categorias")
		{
			categorias.POST("", h.Categoria.Criar)
			categorias.GET("", h.Categoria.Listar)
			categorias.PUT("/reordenar", h.Categoria.Reordenar)
			categorias.GET("/:id", h.Categoria.Buscar)
			categorias.PUT("/:id", h.Categoria.Atualizar)
			categorias.DELETE("/:id", h.Categoria.Desativar)
		}

		pictogramas := api.Group("/pictogramas")
		{
			pictogramas.POST("", h.Pictograma.Criar)
			pictogramas.GET("/categoria/:categoriaId", h.Pictograma.ListarPorCategoria)
			pictogramas.GET("/mais-usados", h.Pictograma.MaisUsados)
			pictogramas.GET("/buscar", h.Pictograma.Buscar)
			pictogramas.GET("/:id", h.Pictograma.BuscarPorID)
			pictogramas.PUT("/:id", h.Pictograma.Atualizar)
			pictogramas.POST("/:id/usar", h.Pictograma.Usar)
			pictogramas.DELETE("/:id", h.Pictograma.Desativar)
		}

		frases := api.Group("/frases-favoritas")
		{
			frases.POST("", h.FraseFavorita.Criar)
			frases.GET("", h.FraseFavorita.Listar)
			frases.GET("/mais-usadas", h.FraseFavorita.MaisUsadas)
			frases.PUT("/reordenar", h.FraseFavorita.Reordenar)
			frases.PUT("/:id", h.FraseFavorita.Atualizar)
			frases.POST("/:id/usar", h.FraseFavorita.Usar)
			frases.DELETE("/:id", h.FraseFavorita.Desativar)
		}

		mensagens := api.Group("/mensagens")
		{
			mensagens.POST("", h.Mensagem.Salvar)
			mensagens.GET("", h.Mensagem.Listar)
			mensagens.GET("/favoritas", h.Mensagem.Favoritas)
			mensagens.GET("/periodo", h.Mensagem.PorPeriodo)
			mensagens.GET("/estatisticas", h.Mensagem.Estatisticas)
			mensagens.PUT("/:id/favorita", h.Mensagem.AlternarFavorita)
			mensagens.POST("/:id/reutilizar", h.Mensagem.Reutilizar)
		}

		configuracoes := api.Group("/configuracoes")
		{
			configuracoes.GET("", h.Configuracao.Obter)
			configuracoes.PUT("", h.Configuracao.Atualizar)
			configuracoes.POST("/resetar", h.Configuracao.Resetar)
		}

		externos := api.Group("/pictogramas-externos")
		{
			externos.GET("/buscar", h.PictogramaExterno.Buscar)
			externos.GET("/categoria/:nome", h.PictogramaExterno.BuscarPorCategoria)
			externos.GET("/sugerir", h.PictogramaExterno.Sugerir)
			externos.GET("/status", h.PictogramaExterno.Status)
			externos.POST("/importar", h.PictogramaExterno.Importar)
			externos.POST("/importar-lote", h.PictogramaExterno.ImportarLote)
			externos.GET("/:idExterno", h.PictogramaExterno.BuscarPorID)
		}
	}

	return router
}
