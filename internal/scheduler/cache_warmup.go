package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/event-dashboard-api/internal/config"
)

// Warmer pré-carrega os dados usados pelo dashboard
type Warmer interface {
	Warm(ctx context.Context) error
}

// CacheWarmupConfig representa a configuração do agendador de aquecimento do cache
type CacheWarmupConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// CacheWarmupService agenda e executa o pré-carregamento da planilha no cache
type CacheWarmupService struct {
	scheduler *gocron.Scheduler
	config    CacheWarmupConfig
	warmer    Warmer
	baseCtx   context.Context

	syncRunning bool
	syncMutex   sync.Mutex

	statusMutex         sync.RWMutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncDuration    time.Duration
	lastSyncError       string
	runs                int
}

// NewCacheWarmupService cria o serviço de aquecimento. O timeout de cada execução
// acompanha o timeout de chamadas à planilha.
func NewCacheWarmupService(warmer Warmer, appConfig *config.Config) *CacheWarmupService {
	warmupConfig := CacheWarmupConfig{
		CronSchedule: appConfig.CacheWarmup.CronSchedule,
		SyncEnabled:  appConfig.CacheWarmup.Enabled,
		Timeout:      appConfig.Sheets.UpstreamTimeout,
	}
	if warmupConfig.Timeout <= 0 {
		warmupConfig.Timeout = 30 * time.Second
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"sync_enabled":  warmupConfig.SyncEnabled,
		"timeout":       warmupConfig.Timeout.String(),
	}).Info("Configuração do agendador de aquecimento do cache carregada")

	return &CacheWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmupConfig,
		warmer:    warmer,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Aquecimento do cache desabilitado por configuração")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmCache()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// warmCache executa uma rodada de aquecimento; rodadas concorrentes são ignoradas
func (s *CacheWarmupService) warmCache() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do cache já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	s.runWarmup()
}

func (s *CacheWarmupService) runWarmup() {
	startTime := time.Now()
	s.statusMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.statusMutex.Unlock()

	ctx, cancel := context.WithTimeout(s.baseCtx, s.config.Timeout)
	defer cancel()

	logrus.Info("Iniciando aquecimento do cache")
	err := s.warmer.Warm(ctx)
	duration := time.Since(startTime)

	s.statusMutex.Lock()
	s.runs++
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncDuration = duration
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.statusMutex.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("duration", duration.String()).Error("Erro ao aquecer o cache")
		return
	}

	logrus.WithField("duration", duration.String()).Info("Aquecimento do cache concluído")
}

// IsRunning informa se há uma rodada em execução
func (s *CacheWarmupService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// TriggerManualSync dispara o aquecimento em background. Retorna false quando
// já existe uma rodada em andamento.
func (s *CacheWarmupService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Aquecimento do cache já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando aquecimento manual do cache")
	go s.warmCache()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmupService) GetStatus() map[string]any {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timeout":           s.config.Timeout.String(),
		"sync_running":           s.IsRunning(),
		"runs":                   s.runs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_duration":     s.lastSyncDuration.String(),
		"last_sync_error":        s.lastSyncError,
	}
}
