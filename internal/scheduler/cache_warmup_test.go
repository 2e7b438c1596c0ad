package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/event-dashboard-api/internal/config"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newWarmupConfig(enabled bool) *config.Config {
	return &config.Config{
		Sheets:      config.Sheets{UpstreamTimeout: time.Second},
		CacheWarmup: config.CacheWarmup{CronSchedule: "*/10 * * * *", Enabled: enabled},
	}
}

func TestCacheWarmupService_warmCache(t *testing.T) {
	tests := []struct {
		name      string
		warmErr   error
		wantError string
	}{
		{
			name: "Aquecimento com sucesso registra execução sem erro",
		},
		{
			name:      "Falha no aquecimento fica registrada no status",
			warmErr:   errors.New("planilha indisponível"),
			wantError: "planilha indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dashboard := mocks.NewMockDashboardService(ctrl)
			dashboard.EXPECT().Warm(gomock.Any()).Return(tt.warmErr)

			service := NewCacheWarmupService(dashboard, newWarmupConfig(true))
			service.warmCache()

			status := service.GetStatus()
			assert.Equal(t, 1, status["runs"])
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestCacheWarmupService_warmCacheUsaTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboardService(ctrl)
	dashboard.EXPECT().Warm(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})

	NewCacheWarmupService(dashboard, newWarmupConfig(true)).warmCache()
}

func TestCacheWarmupService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboardService(ctrl)

	release := make(chan struct{})
	started := make(chan struct{})
	dashboard.EXPECT().Warm(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}).Times(1)

	service := NewCacheWarmupService(dashboard, newWarmupConfig(false))

	require.True(t, service.TriggerManualSync())
	<-started

	// segunda solicitação durante a execução é ignorada
	assert.False(t, service.TriggerManualSync())
	assert.True(t, service.IsRunning())

	close(release)
	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, service.GetStatus()["runs"])
}

func TestCacheWarmupService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewCacheWarmupService(mocks.NewMockDashboardService(ctrl), newWarmupConfig(false))

		assert.NoError(t, service.Start(context.Background()))
		assert.Len(t, service.scheduler.Jobs(), 0)
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := newWarmupConfig(true)
		cfg.CacheWarmup.CronSchedule = "não é cron"
		service := NewCacheWarmupService(mocks.NewMockDashboardService(ctrl), cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Habilitado agenda e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewCacheWarmupService(mocks.NewMockDashboardService(ctrl), newWarmupConfig(true))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
