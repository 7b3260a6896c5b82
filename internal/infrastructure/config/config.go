package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MinJWTSecretLength é o tamanho mínimo do segredo HS256 (256 bits)
const MinJWTSecretLength = 32

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Arasaac  ArasaacConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

// RedisConfig é opcional: sem URL o cache do catálogo fica em memória
type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type ArasaacConfig struct {
	APIURL         string
	ImageURL       string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	RateLimit      float64
	Burst          int
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type I18nConfig struct {
	DefaultLanguage string
}

// Load carrega as configurações do arquivo .env (opcional) e do ambiente
func Load() (*Config, error) {
	// .env é opcional: em produção tudo vem do ambiente
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase carrega só o bloco do banco, para ferramentas como cmd/migrate
func LoadDatabase() (*DatabaseConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	db := fromViper(v).Database
	if db.Host == "" {
		return nil, errors.New("DB_HOST is required")
	}
	return &db, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("ARASAAC_API_URL", "https://api.arasaac.org/v1")
	v.SetDefault("ARASAAC_IMAGE_URL", "https://static.arasaac.org/pictograms")
	v.SetDefault("ARASAAC_CONNECT_TIMEOUT", "5s")
	v.SetDefault("ARASAAC_READ_TIMEOUT", "10s")
	v.SetDefault("ARASAAC_RATE_LIMIT", 10)
	v.SetDefault("ARASAAC_BURST", 20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("DEFAULT_LANGUAGE", "pt-BR")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetDuration("JWT_EXPIRATION"),
		},
		Arasaac: ArasaacConfig{
			APIURL:         strings.TrimRight(v.GetString("ARASAAC_API_URL"), "/"),
			ImageURL:       strings.TrimRight(v.GetString("ARASAAC_IMAGE_URL"), "/"),
			ConnectTimeout: v.GetDuration("ARASAAC_CONNECT_TIMEOUT"),
			ReadTimeout:    v.GetDuration("ARASAAC_READ_TIMEOUT"),
			RateLimit:      v.GetFloat64("ARASAAC_RATE_LIMIT"),
			Burst:          v.GetInt("ARASAAC_BURST"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
	}
}

// Validate rejeita configurações que impedem o serviço de subir com segurança
func (c *Config) Validate() error {
	var errs []error

	if len(c.JWT.Secret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must have at least %d bytes", MinJWTSecretLength))
	}
	if c.JWT.Expiration <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION must be positive"))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}

	return errors.Join(errs...)
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
