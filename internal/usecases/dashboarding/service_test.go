package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/event-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets"
	sheetsmocks "github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/event-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const (
	testSheet      = "Sheet1"
	testEventSheet = "Event 2024"
)

type eventRow struct {
	id, region, action, category, month string
	revenue                             [3]float64
	payload                             [3]float64
	opex, profit                        float64
}

func (e eventRow) cells() []any {
	row := make([]any, 24)
	for i := range row {
		row[i] = ""
	}
	row[0] = e.id
	row[2] = "2024-01-10"
	row[3] = "2024-01-12"
	row[4] = e.region
	for i := 0; i < 3; i++ {
		row[5+i] = fmt.Sprint(e.payload[i])
		row[8+i] = fmt.Sprint(e.revenue[i])
		row[11+i] = "0"
	}
	row[17] = e.action
	row[18] = e.category
	row[19] = e.month
	row[20] = fmt.Sprint(e.opex)
	row[21] = fmt.Sprint(e.profit)
	return row
}

func fixtureGrid() [][]any {
	return [][]any{
		eventRow{id: "E1", region: "Jawa Timur", action: "Add New NE", category: "Local", month: "January", revenue: [3]float64{100, 110, 10}, payload: [3]float64{50, 60, 10}, opex: 1000, profit: 200}.cells(),
		eventRow{id: "E1", region: "Jawa Timur", action: "Add New NE", category: "Local", month: "January", revenue: [3]float64{50, 55, 5}, payload: [3]float64{0, 0, 0}, opex: 500, profit: 100}.cells(),
		eventRow{id: "E2", region: "Jawa Tengah", action: "Install CMON", category: "VIP Event", month: "February", revenue: [3]float64{20, 40, 20}, opex: 300, profit: 50}.cells(),
		eventRow{id: "E3", region: "Bali Nusra", action: "Optim Site", category: "Local", month: "January", revenue: [3]float64{0, 7, 7}, opex: 10, profit: 1}.cells(),
	}
}

func nameGrid() [][]any {
	return [][]any{{"E1", "Festival Surabaya"}, {"E2", "Konser Semarang"}}
}

type fixture struct {
	fetcher  *sheetsmocks.MockSheetsIntegrator
	fetchLog *mocks.MockFetchLogRepository
	cache    *cache.Service
	service  DashboardService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		fetcher:  sheetsmocks.NewMockSheetsIntegrator(ctrl),
		fetchLog: mocks.NewMockFetchLogRepository(ctrl),
		cache:    cache.NewService(cache.NewMemoryStore(), cache.TTLs{}),
	}
	f.service = NewService(
		f.fetcher,
		f.cache,
		aggregating.New(aggregating.DefaultSchema),
		querying.New(domain.DefaultPageSize),
		f.fetchLog,
		Options{SheetName: testSheet, EventSheetName: testEventSheet},
	)
	return f
}

func (f *fixture) expectGrid(grid [][]any) *gomock.Call {
	return f.fetcher.EXPECT().FetchRange(gomock.Any(), testSheet, dataRange).Return(grid, nil)
}

func (f *fixture) expectNames() *gomock.Call {
	return f.fetcher.EXPECT().FetchRange(gomock.Any(), testEventSheet, namesRange).Return(nameGrid(), nil)
}

func TestTableData(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectGrid(fixtureGrid()).Times(1)
	f.expectNames().Times(1)

	page, err := f.service.TableData(ctx, domain.TableQuery{Page: 1, Limit: 2, SortBy: "revenue", SortOrder: "desc"})
	require.NoError(t, err)

	require.Len(t, page.Data, 2)
	assert.Equal(t, "E2", page.Data[0].ID)
	assert.Equal(t, "Konser Semarang", page.Data[0].Name)
	assert.Equal(t, "E1", page.Data[1].ID)
	assert.Equal(t, 15.0, page.Data[1].Revenue.Delta)
	assert.Equal(t, domain.Pagination{TotalItems: 3, TotalPages: 2, CurrentPage: 1, Limit: 2}, page.Pagination)

	// segunda página sai do agregado em cache
	page, err = f.service.TableData(ctx, domain.TableQuery{Page: 2, Limit: 2, SortBy: "revenue", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "E3", page.Data[0].ID)
	assert.Equal(t, domain.UnknownEventName, page.Data[0].Name)

	page, err = f.service.TableData(ctx, domain.TableQuery{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestTableData_PlanilhaVazia(t *testing.T) {
	f := newFixture(t)
	f.expectGrid([][]any{}).Times(1)

	page, err := f.service.TableData(context.Background(), domain.TableQuery{})
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, domain.Pagination{TotalItems: 0, TotalPages: 0, CurrentPage: 1, Limit: domain.DefaultPageSize}, page.Pagination)
}

func TestAreaSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectGrid(fixtureGrid()).Times(1)

	tests := []struct {
		name           string
		filters        domain.QueryFilterSet
		expectedCounts int
		expectedRev    float64
	}{
		{name: "sem filtros", filters: domain.NewQueryFilterSet("", "", "", ""), expectedCounts: 3, expectedRev: 42},
		{name: "filtro em minúsculas", filters: domain.NewQueryFilterSet("january", "local", "", ""), expectedCounts: 2, expectedRev: 22},
		{name: "filtro em maiúsculas", filters: domain.NewQueryFilterSet("JANUARY", "LOCAL", "", ""), expectedCounts: 2, expectedRev: 22},
		{name: "várias categorias", filters: domain.NewQueryFilterSet("", "local,vip event", "", ""), expectedCounts: 3, expectedRev: 42},
		{name: "nenhuma linha casa", filters: domain.NewQueryFilterSet("december", "", "", ""), expectedCounts: 0, expectedRev: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := f.service.AreaSummary(ctx, tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCounts, summary.EventCounts)
			assert.InDelta(t, tt.expectedRev, summary.Totals.Revenue, 1e-9)
		})
	}
}

func TestRegionSummary(t *testing.T) {
	f := newFixture(t)
	f.expectGrid(fixtureGrid()).Times(1)

	summary, err := f.service.RegionSummary(context.Background(), domain.RegionEastJava, domain.NewQueryFilterSet("", "", "", ""))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.EventCounts)
	assert.Equal(t, 15.0, summary.Totals.Revenue)
	assert.Equal(t, 1500.0, summary.Totals.Opex)
	assert.Equal(t, 300.0, summary.Totals.Profitability)
	assert.InDelta(t, 10.0, summary.Totals.RevenueGrowth, 1e-9)
}

func TestResumosCompartilhamUmaBusca(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectGrid(fixtureGrid()).Times(1)

	_, err := f.service.AreaSummary(ctx, domain.QueryFilterSet{})
	require.NoError(t, err)

	series, err := f.service.GraphData(ctx)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, domain.RegionEastJava, series[0].Region)

	months, err := f.service.FilterOptions(ctx, aggregating.DimensionMonth)
	require.NoError(t, err)
	assert.Equal(t, []string{"JANUARY", "FEBRUARY"}, months)

	categories, err := f.service.FilterOptions(ctx, aggregating.DimensionCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"LOCAL", "VIP EVENT"}, categories)

	actions, err := f.service.ActionSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionSummary{AddNe: 2, CMON: 1, Optim: 1}, actions)
}

func TestPlanilhaVaziaSemDados(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectGrid(nil).Times(1)

	calls := map[string]func() error{
		"area": func() error {
			_, err := f.service.AreaSummary(ctx, domain.QueryFilterSet{})
			return err
		},
		"região": func() error {
			_, err := f.service.RegionSummary(ctx, domain.RegionBaliNusra, domain.QueryFilterSet{})
			return err
		},
		"gráfico": func() error {
			_, err := f.service.GraphData(ctx)
			return err
		},
		"meses": func() error {
			_, err := f.service.FilterOptions(ctx, aggregating.DimensionMonth)
			return err
		},
		"ações": func() error {
			_, err := f.service.ActionSummary(ctx)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.ErrorIs(t, err, ErrNoDataFound)

			var dashErr *DashboardError
			require.ErrorAs(t, err, &dashErr)
			assert.Equal(t, apiErrors.ErrNoDataFound, dashErr.Code)
		})
	}
}

func TestUpstreamIndisponivelNaoEhCacheado(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	upstreamErr := fmt.Errorf("%w: timeout", sheets.ErrUpstreamUnavailable)
	gomock.InOrder(
		f.fetcher.EXPECT().FetchRange(gomock.Any(), testSheet, dataRange).Return(nil, upstreamErr),
		f.expectGrid(fixtureGrid()),
	)

	_, err := f.service.AreaSummary(ctx, domain.QueryFilterSet{})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, sheets.ErrUpstreamUnavailable)

	var dashErr *DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, apiErrors.ErrExternalService, dashErr.Code)
	assert.Equal(t, "rawData_"+testSheet, dashErr.CacheKey)

	summary, err := f.service.AreaSummary(ctx, domain.QueryFilterSet{})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.EventCounts)
}

func TestClearCache_RequisicoesSimultaneasUmaBusca(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	gate := make(chan struct{})
	f.fetcher.EXPECT().
		FetchRange(gomock.Any(), testSheet, dataRange).
		DoAndReturn(func(context.Context, string, string) ([][]any, error) {
			<-gate
			return fixtureGrid(), nil
		}).
		Times(1)
	f.expectNames().Times(1)

	require.NoError(t, f.service.ClearCache(ctx))

	var wg sync.WaitGroup
	pages := make([]domain.TablePage, 2)
	for i := range pages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := f.service.TableData(ctx, domain.TableQuery{Page: 1})
			assert.NoError(t, err)
			pages[i] = page
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, pages[0], pages[1])
	assert.Len(t, pages[0].Data, 3)
}

func TestClearCache_ForcaNovaBusca(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectGrid(fixtureGrid()).Times(2)

	require.NoError(t, f.service.ClearCache(ctx), "limpar cache vazio")

	_, err := f.service.GraphData(ctx)
	require.NoError(t, err)

	require.NoError(t, f.service.ClearCache(ctx))
	require.NoError(t, f.service.ClearCache(ctx))

	_, err = f.service.GraphData(ctx)
	require.NoError(t, err)
}

func TestWarm(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectGrid(fixtureGrid()).Times(1)
	f.expectNames().Times(1)

	require.NoError(t, f.service.Warm(ctx))

	_, err := f.service.TableData(ctx, domain.TableQuery{})
	require.NoError(t, err)
}

func TestCacheStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.expectGrid(fixtureGrid()).Times(1)

	_, err := f.service.AreaSummary(ctx, domain.QueryFilterSet{})
	require.NoError(t, err)

	recent := []domain.SheetFetch{{ID: "abc", SheetName: testSheet, Range: dataRange, Rows: 4, Success: true}}
	gomock.InOrder(
		f.fetchLog.EXPECT().Recent(gomock.Any(), 10).Return(recent, nil),
		f.fetchLog.EXPECT().Recent(gomock.Any(), 10).Return(nil, errors.New("banco fora do ar")),
	)

	status, err := f.service.CacheStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, cache.BackendMemory, status.Backend)
	assert.Equal(t, 1, status.Entries)
	assert.Equal(t, int64(1), status.Misses)
	assert.NotEmpty(t, status.Generation)
	assert.Equal(t, recent, status.RecentFetches)

	status, err = f.service.CacheStatus(ctx)
	require.NoError(t, err, "falha no log de buscas não derruba o status")
	assert.Nil(t, status.RecentFetches)
}

func TestValidateHeaders(t *testing.T) {
	ctx := context.Background()

	header := make([]any, 24)
	for _, col := range aggregating.DefaultSchema.Columns() {
		header[col.Index] = col.Header
	}

	t.Run("cabeçalho conforme", func(t *testing.T) {
		f := newFixture(t)
		f.fetcher.EXPECT().FetchRange(gomock.Any(), testSheet, headerRange).Return([][]any{header}, nil)

		mismatches, err := f.service.ValidateHeaders(ctx)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
	})

	t.Run("coluna fora do lugar", func(t *testing.T) {
		f := newFixture(t)
		changed := append([]any(nil), header...)
		changed[aggregating.DefaultSchema.Region] = "Area"
		f.fetcher.EXPECT().FetchRange(gomock.Any(), testSheet, headerRange).Return([][]any{changed}, nil)

		mismatches, err := f.service.ValidateHeaders(ctx)
		require.NoError(t, err)
		require.Len(t, mismatches, 1)
		assert.Equal(t, "region", mismatches[0].Column.Field)
	})

	t.Run("upstream indisponível", func(t *testing.T) {
		f := newFixture(t)
		f.fetcher.EXPECT().FetchRange(gomock.Any(), testSheet, headerRange).Return(nil, sheets.ErrUpstreamUnavailable)

		_, err := f.service.ValidateHeaders(ctx)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	})
}
