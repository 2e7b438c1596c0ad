// Package dashboarding orquestra cache, planilha e agregação para cada endpoint do dashboard
package dashboarding

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/event-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/event-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const (
	dataRange   = "A2:X"
	headerRange = "A1:X1"
	namesRange  = "B2:C"

	keyTableData     = "tableData"
	keyGraphData     = "graphData"
	keyActionSummary = "actionSummary"
)

type DashboardService interface {
	AreaSummary(ctx context.Context, filters domain.QueryFilterSet) (domain.AreaSummary, error)
	RegionSummary(ctx context.Context, region string, filters domain.QueryFilterSet) (domain.AreaSummary, error)
	GraphData(ctx context.Context) ([]domain.RegionSeries, error)
	TableData(ctx context.Context, query domain.TableQuery) (domain.TablePage, error)
	FilterOptions(ctx context.Context, dim aggregating.Dimension) ([]string, error)
	ActionSummary(ctx context.Context) (domain.ActionSummary, error)
	ClearCache(ctx context.Context) error
	Warm(ctx context.Context) error
	CacheStatus(ctx context.Context) (domain.CacheStatus, error)
	ValidateHeaders(ctx context.Context) ([]aggregating.HeaderMismatch, error)
}

type Options struct {
	SheetName      string
	EventSheetName string
}

type Service struct {
	fetcher    sheets.SheetsIntegrator
	cache      *cache.Service
	aggregator *aggregating.Aggregator
	processor  *querying.Processor
	fetchLog   repository.FetchLogRepository
	opts       Options
}

// NewService monta o serviço. fetchLog pode ser nil.
func NewService(
	fetcher sheets.SheetsIntegrator,
	cacheService *cache.Service,
	aggregator *aggregating.Aggregator,
	processor *querying.Processor,
	fetchLog repository.FetchLogRepository,
	opts Options,
) DashboardService {
	return &Service{
		fetcher:    fetcher,
		cache:      cacheService,
		aggregator: aggregator,
		processor:  processor,
		fetchLog:   fetchLog,
		opts:       opts,
	}
}

func (s *Service) rawKey() string {
	return "rawData_" + s.opts.SheetName
}

func (s *Service) namesKey() string {
	return "eventNames_" + s.opts.EventSheetName
}

func filterOptionsKey(dim aggregating.Dimension) string {
	return "filterOptions_" + string(dim)
}

// rawData devolve a grade completa, sem filtros. Uma busca atende todas as
// variações de filtro enquanto o TTL durar.
func (s *Service) rawData(ctx context.Context) ([][]any, error) {
	return cache.Remember(ctx, s.cache, s.rawKey(), s.cache.TTL(cache.TTLData), func(ctx context.Context) ([][]any, error) {
		return s.fetcher.FetchRange(ctx, s.opts.SheetName, dataRange)
	})
}

// requireRawData trata zero linhas como ausência de dados
func (s *Service) requireRawData(ctx context.Context) ([][]any, error) {
	raw, err := s.rawData(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoDataFound
	}
	return raw, nil
}

func (s *Service) eventNames(ctx context.Context) (map[string]string, error) {
	return cache.Remember(ctx, s.cache, s.namesKey(), s.cache.TTL(cache.TTLLookup), func(ctx context.Context) (map[string]string, error) {
		rows, err := s.fetcher.FetchRange(ctx, s.opts.EventSheetName, namesRange)
		if err != nil {
			return nil, err
		}
		return aggregating.BuildNameLookup(rows), nil
	})
}

func (s *Service) AreaSummary(ctx context.Context, filters domain.QueryFilterSet) (domain.AreaSummary, error) {
	raw, err := s.requireRawData(ctx)
	if err != nil {
		return domain.AreaSummary{}, s.fail(ctx, err, s.rawKey())
	}
	return s.aggregator.Summarize(raw, filters), nil
}

func (s *Service) RegionSummary(ctx context.Context, region string, filters domain.QueryFilterSet) (domain.AreaSummary, error) {
	filters.Region = strings.ToLower(strings.TrimSpace(region))
	return s.AreaSummary(ctx, filters)
}

func (s *Service) GraphData(ctx context.Context) ([]domain.RegionSeries, error) {
	series, err := cache.Remember(ctx, s.cache, keyGraphData, s.cache.TTL(cache.TTLDefault), func(ctx context.Context) ([]domain.RegionSeries, error) {
		raw, err := s.requireRawData(ctx)
		if err != nil {
			return nil, err
		}
		return s.aggregator.GroupByRegionMonth(raw), nil
	})
	if err != nil {
		return nil, s.fail(ctx, err, keyGraphData)
	}
	return series, nil
}

// TableData aplica busca, ordenação e paginação sobre o agregado em cache.
// Planilha vazia devolve página vazia.
func (s *Service) TableData(ctx context.Context, query domain.TableQuery) (domain.TablePage, error) {
	records, err := cache.Remember(ctx, s.cache, keyTableData, s.cache.TTL(cache.TTLDefault), func(ctx context.Context) ([]domain.EventRecord, error) {
		raw, err := s.rawData(ctx)
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			return []domain.EventRecord{}, nil
		}

		names, err := s.eventNames(ctx)
		if err != nil {
			return nil, err
		}
		return s.aggregator.GroupByID(raw, names), nil
	})
	if err != nil {
		return domain.TablePage{}, s.fail(ctx, err, keyTableData)
	}

	return s.processor.Apply(records, query), nil
}

func (s *Service) FilterOptions(ctx context.Context, dim aggregating.Dimension) ([]string, error) {
	key := filterOptionsKey(dim)
	options, err := cache.Remember(ctx, s.cache, key, s.cache.TTL(cache.TTLDefault), func(ctx context.Context) ([]string, error) {
		raw, err := s.requireRawData(ctx)
		if err != nil {
			return nil, err
		}
		return s.aggregator.FilterOptions(raw, dim), nil
	})
	if err != nil {
		return nil, s.fail(ctx, err, key)
	}
	return options, nil
}

func (s *Service) ActionSummary(ctx context.Context) (domain.ActionSummary, error) {
	summary, err := cache.Remember(ctx, s.cache, keyActionSummary, s.cache.TTL(cache.TTLDefault), func(ctx context.Context) (domain.ActionSummary, error) {
		raw, err := s.requireRawData(ctx)
		if err != nil {
			return domain.ActionSummary{}, err
		}
		return s.aggregator.SummarizeActions(raw), nil
	})
	if err != nil {
		return domain.ActionSummary{}, s.fail(ctx, err, keyActionSummary)
	}
	return summary, nil
}

// ClearCache remove dados brutos e agregados. Pode ser chamado com o cache vazio.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.cache.Flush(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: falha ao limpar o cache")
		return NewDashboardError(ErrCacheOperation, apiErrors.ErrCacheOperation, "não foi possível limpar o cache")
	}
	return nil
}

// Warm pré-carrega a grade e o mapa de nomes
func (s *Service) Warm(ctx context.Context) error {
	if _, err := s.rawData(ctx); err != nil {
		return s.fail(ctx, err, s.rawKey())
	}
	if _, err := s.eventNames(ctx); err != nil {
		return s.fail(ctx, err, s.namesKey())
	}
	return nil
}

func (s *Service) CacheStatus(ctx context.Context) (domain.CacheStatus, error) {
	status, err := s.cache.Status(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dashboard: falha ao consultar o cache")
		return domain.CacheStatus{}, NewDashboardError(ErrCacheOperation, apiErrors.ErrCacheOperation, "não foi possível consultar o cache")
	}

	if s.fetchLog != nil {
		recent, err := s.fetchLog.Recent(ctx, repository.DefaultRecentFetches)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("dashboard: falha ao listar buscas recentes")
		} else {
			status.RecentFetches = recent
		}
	}

	return status, nil
}

// ValidateHeaders lê a linha de cabeçalho direto da planilha, sem cache
func (s *Service) ValidateHeaders(ctx context.Context) ([]aggregating.HeaderMismatch, error) {
	rows, err := s.fetcher.FetchRange(ctx, s.opts.SheetName, headerRange)
	if err != nil {
		return nil, classify(err, "")
	}

	var header []any
	if len(rows) > 0 {
		header = rows[0]
	}
	return s.aggregator.Schema().ValidateHeader(header), nil
}

func (s *Service) fail(ctx context.Context, err error, cacheKey string) error {
	classified := classify(err, cacheKey)

	logger := log.ForContext(ctx).WithError(err).WithField("cache_key", cacheKey)
	switch {
	case errors.Is(classified, ErrNoDataFound):
		logger.Info("dashboard: planilha sem dados")
	case errors.Is(classified, ErrUpstreamUnavailable):
		logger.Error("dashboard: fonte de dados indisponível")
	case errors.Is(classified, ErrUnexpected):
		logger.Error("dashboard: erro inesperado")
	}

	return classified
}
