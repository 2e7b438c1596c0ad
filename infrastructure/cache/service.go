package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
	"github.com/vfg2006/event-dashboard-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL       = 120 * time.Second
	DefaultDataTTL   = 900 * time.Second
	DefaultLookupTTL = 6 * time.Hour
)

// TTLClass identifica a política de expiração de uma chave
type TTLClass int

const (
	TTLDefault TTLClass = iota
	TTLData
	TTLLookup
)

type TTLs struct {
	Default time.Duration
	Data    time.Duration
	Lookup  time.Duration
}

func (t TTLs) withDefaults() TTLs {
	if t.Default <= 0 {
		t.Default = DefaultTTL
	}
	if t.Data <= 0 {
		t.Data = DefaultDataTTL
	}
	if t.Lookup <= 0 {
		t.Lookup = DefaultLookupTTL
	}
	return t
}

// ErrUnexpectedValue indica um valor em cache que não corresponde ao tipo pedido
var ErrUnexpectedValue = errors.New("valor inesperado no cache")

// Service é o ponto único de acesso ao cache. Cada Flush inicia uma nova
// geração e buscas iniciadas na geração anterior não gravam seus resultados.
type Service struct {
	store Store
	ttls  TTLs
	group singleflight.Group

	mu         sync.RWMutex
	generation string

	hits   atomic.Int64
	misses atomic.Int64
}

func NewService(store Store, ttls TTLs) *Service {
	return &Service{
		store:      store,
		ttls:       ttls.withDefaults(),
		generation: newGeneration(),
	}
}

func newGeneration() string {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Sprintf("gen-%d", time.Now().UnixNano())
	}
	return id
}

func (s *Service) TTL(class TTLClass) time.Duration {
	switch class {
	case TTLData:
		return s.ttls.Data
	case TTLLookup:
		return s.ttls.Lookup
	default:
		return s.ttls.Default
	}
}

func (s *Service) Generation() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Flush remove todas as entradas. Pode ser chamado com o cache vazio.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Flush(ctx); err != nil {
		return err
	}
	s.generation = newGeneration()

	log.ForContext(ctx).WithField("generation", s.generation).Info("Cache limpo")
	return nil
}

func (s *Service) Status(ctx context.Context) (domain.CacheStatus, error) {
	entries, err := s.store.Len(ctx)
	if err != nil {
		return domain.CacheStatus{}, err
	}

	return domain.CacheStatus{
		Backend:    s.store.Backend(),
		Entries:    entries,
		Hits:       s.hits.Load(),
		Misses:     s.misses.Load(),
		Generation: s.Generation(),
	}, nil
}

// setForGeneration grava o valor apenas se nenhum Flush ocorreu desde que a busca começou
func (s *Service) setForGeneration(ctx context.Context, generation, key string, value any, ttl time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.generation != generation {
		log.ForContext(ctx).WithField("cache_key", key).Debug("Cache limpo durante a busca, resultado descartado")
		return
	}

	if err := s.store.Set(ctx, key, value, ttl); err != nil {
		log.ForContext(ctx).WithError(err).WithField("cache_key", key).Warn("Falha ao gravar no cache")
	}
}

// Remember devolve o valor da chave ou executa load uma única vez entre
// chamadas concorrentes. Erros de load nunca são gravados. Quem desiste de
// esperar (ctx cancelado) não cancela a busca compartilhada.
func Remember[T any](ctx context.Context, s *Service, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if value, ok := s.lookup(ctx, key); ok {
		return decode[T](key, value)
	}

	generation := s.Generation()
	ch := s.group.DoChan(generation+":"+key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)

		// outra busca pode ter gravado a chave entre a leitura e o DoChan
		if value, ok, err := s.store.Get(loadCtx, key); err == nil && ok {
			return decode[T](key, value)
		}

		value, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		s.setForGeneration(loadCtx, generation, key, value, ttl)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case result := <-ch:
		if result.Err != nil {
			return zero, result.Err
		}
		return result.Val.(T), nil
	}
}

// lookup trata falha do backend como miss
func (s *Service) lookup(ctx context.Context, key string) (any, bool) {
	value, ok, err := s.store.Get(ctx, key)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("cache_key", key).Warn("Falha ao ler do cache")
		ok = false
	}
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return value, ok
}

func decode[T any](key string, value any) (T, error) {
	var result T

	switch v := value.(type) {
	case T:
		return v, nil
	case []byte:
		if err := json.Unmarshal(v, &result); err != nil {
			return result, fmt.Errorf("%w: chave %s: %v", ErrUnexpectedValue, key, err)
		}
		return result, nil
	default:
		return result, fmt.Errorf("%w: chave %s contém %T", ErrUnexpectedValue, key, value)
	}
}
