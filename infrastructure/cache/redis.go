package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultRedisPrefix = "event-dashboard:"
	scanBatch          = 200
)

// RedisStore compartilha o cache entre instâncias. Os valores são gravados
// como JSON e lidos de volta como []byte.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisStoreFromURL cria o cliente a partir de uma URL redis:// e testa a conexão
func NewRedisStoreFromURL(ctx context.Context, url, prefix string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "URL do redis inválida")
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "falha ao conectar no redis")
	}

	return NewRedisStore(client, prefix), nil
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

func (r *RedisStore) Get(ctx context.Context, key string) (any, bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "falha ao ler a chave %s", key)
	}
	return data, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("falha ao serializar a chave %s: %w", key, err)
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return errors.Wrapf(err, "falha ao gravar a chave %s", key)
	}
	return nil
}

// Flush remove apenas as chaves com o prefixo desta aplicação
func (r *RedisStore) Flush(ctx context.Context) error {
	keys, err := r.scan(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "falha ao limpar o cache")
	}
	return nil
}

func (r *RedisStore) Len(ctx context.Context) (int, error) {
	keys, err := r.scan(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (r *RedisStore) Backend() string {
	return BackendRedis
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) scan(ctx context.Context) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)

	for {
		batch, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatch).Result()
		if err != nil {
			return nil, errors.Wrap(err, "falha ao listar as chaves do cache")
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
