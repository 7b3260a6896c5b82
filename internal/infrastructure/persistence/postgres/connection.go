package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projetovox/vox-backend/internal/domain/ports"
	"github.com/projetovox/vox-backend/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// NewDatabaseConnection abre o pool do PostgreSQL e só retorna depois de um ping bem-sucedido
func NewDatabaseConnection(cfg *config.DatabaseConfig, logLevel string, log ports.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(logLevel, log))
	if err != nil {
		return nil, fmt.Errorf("open postgres %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	log.Info("postgres ready",
		"host", cfg.Host,
		"database", cfg.DBName,
		"max_conns", cfg.MaxConns,
	)
	return db, nil
}

// GormConfig monta a configuração do GORM. As linhas do GORM vão para log,
// filtradas pelo nível da aplicação.
func GormConfig(logLevel string, log ports.Logger) *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(gormWriter{log: log.With("component", "gorm")}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(logLevel),
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// gormWriter adapta ports.Logger ao logger.Writer do GORM
type gormWriter struct {
	log ports.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "info", "warn":
		return logger.Warn
	case "silent":
		return logger.Silent
	default:
		return logger.Error
	}
}
