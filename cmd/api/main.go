//	@title			Vox API
//	@version		1.0
//	@description	Backend de comunicação aumentativa e alternativa.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/projetovox/vox-backend/docs"
	"github.com/projetovox/vox-backend/internal/domain/ports"
	httphandlers "github.com/projetovox/vox-backend/internal/handlers/http"
	"github.com/projetovox/vox-backend/internal/infrastructure/arasaac"
	"github.com/projetovox/vox-backend/internal/infrastructure/cache"
	"github.com/projetovox/vox-backend/internal/infrastructure/config"
	"github.com/projetovox/vox-backend/internal/infrastructure/i18n"
	"github.com/projetovox/vox-backend/internal/infrastructure/logging"
	"github.com/projetovox/vox-backend/internal/infrastructure/metrics"
	"github.com/projetovox/vox-backend/internal/infrastructure/persistence/postgres"
	"github.com/projetovox/vox-backend/internal/infrastructure/token"
	"github.com/projetovox/vox-backend/internal/services"
)

const cachePrefix = "vox:"

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting vox backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Cache do catálogo: Redis quando configurado, memória caso contrário
	var catalogCache ports.Cache
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisFromURL(context.Background(), cfg.Redis.URL, cachePrefix)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			log.Fatal(err)
		}
		defer redisCache.Close()
		catalogCache = redisCache
		logger.Info("catalog cache using redis")
	} else {
		catalogCache = cache.NewMemory()
		logger.Info("catalog cache using memory")
	}

	m := metrics.New()

	catalog := arasaac.NewClient(arasaac.Config{
		APIURL:         cfg.Arasaac.APIURL,
		ImageURL:       cfg.Arasaac.ImageURL,
		ConnectTimeout: cfg.Arasaac.ConnectTimeout,
		ReadTimeout:    cfg.Arasaac.ReadTimeout,
		RateLimit:      cfg.Arasaac.RateLimit,
		Burst:          cfg.Arasaac.Burst,
	}, catalogCache, m, logger)

	tokens, err := token.NewService(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		logger.Error("failed to initialize token service", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	uow := postgres.NewUnitOfWork(db)
	usuarioRepo := postgres.NewUsuarioRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	pictogramaRepo := postgres.NewPictogramaRepository(db)
	fraseRepo := postgres.NewFraseFavoritaRepository(db)
	mensagemRepo := postgres.NewMensagemRepository(db)
	configRepo := postgres.NewConfiguracaoRepository(db)

	// Inicializar services
	authService := services.NewAuthService(usuarioRepo, tokens, uow, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, logger)
	categoriaService := services.NewCategoriaService(categoriaRepo, pictogramaRepo, usuarioRepo, uow, logger)
	pictogramaService := services.NewPictogramaService(pictogramaRepo, categoriaRepo, usuarioRepo, uow, logger)
	fraseService := services.NewFraseFavoritaService(fraseRepo, usuarioRepo, uow, logger)
	mensagemService := services.NewMensagemService(mensagemRepo, usuarioRepo, uow, logger)
	configuracaoService := services.NewConfiguracaoService(configRepo, usuarioRepo, uow, logger)
	importacaoService := services.NewImportacaoService(catalog, pictogramaRepo, categoriaRepo, usuarioRepo, uow, m, logger)

	// Inicializar handlers e rotas
	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		I18n:           i18nService,
		Metrics:        m,
		Authenticator:  authService,
		Logger:         logger,
	}, httphandlers.Handlers{
		Auth:              httphandlers.NewAuthHandler(authService),
		Usuario:           httphandlers.NewUsuarioHandler(usuarioService),
		Categoria:         httphandlers.NewCategoriaHandler(categoriaService),
		Pictograma:        httphandlers.NewPictogramaHandler(pictogramaService),
		FraseFavorita:     httphandlers.NewFraseFavoritaHandler(fraseService),
		Mensagem:          httphandlers.NewMensagemHandler(mensagemService),
		Configuracao:      httphandlers.NewConfiguracaoHandler(configuracaoService),
		PictogramaExterno: httphandlers.NewPictogramaExternoHandler(importacaoService),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
