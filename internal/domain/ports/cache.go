package ports

import (
	"context"
	"time"
)

// Cache é um armazenamento chave-valor com expiração
type Cache interface {
	// Get preenche dest e retorna true quando a chave existe e não expirou
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
