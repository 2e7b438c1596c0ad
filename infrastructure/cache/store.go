// Package cache guarda a grade bruta da planilha e os agregados derivados,
// deduplicando buscas concorrentes ao upstream.
package cache

import (
	"context"
	"time"
)

// Store é o backend de armazenamento do cache
type Store interface {
	// Get devolve o valor e se a chave estava presente e válida
	Get(ctx context.Context, key string) (any, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Flush(ctx context.Context) error
	Len(ctx context.Context) (int, error)
	Backend() string
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)
