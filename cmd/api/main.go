package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/event-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/event-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets/xlsxclient"
	"github.com/vfg2006/event-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/event-dashboard-api/internal/api"
	"github.com/vfg2006/event-dashboard-api/internal/api/handler"
	"github.com/vfg2006/event-dashboard-api/internal/config"
	"github.com/vfg2006/event-dashboard-api/internal/scheduler"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

func main() {
	// Executa a partir do diretório do binário para que o .env seja encontrado
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))

	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var closers []func() error

	store, closeStore := cacheStore(ctx, cfg.Cache)
	if closeStore != nil {
		closers = append(closers, closeStore)
	}
	cacheService := cache.NewService(store, cache.TTLs{
		Default: cfg.Cache.DefaultTTL,
		Data:    cfg.Cache.DataTTL,
		Lookup:  cfg.Cache.LookupTTL,
	})

	var fetchLogRepo repository.FetchLogRepository
	if cfg.FetchLog.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		closers = append(closers, pgConn.Close)
		fetchLogRepo = repository.NewFetchLogRepository(pgConn)
	}

	client := sheetsClient(ctx, cfg)

	var recorder sheets.FetchRecorder
	if fetchLogRepo != nil {
		recorder = fetchLogRepo
	}
	fetcher := sheets.New(client, cfg.Sheets.UpstreamTimeout, recorder)

	dashboardService := dashboarding.NewService(
		fetcher,
		cacheService,
		aggregating.New(aggregating.DefaultSchema),
		querying.New(cfg.App.DefaultPageSize),
		fetchLogRepo,
		dashboarding.Options{
			SheetName:      cfg.Sheets.SheetName,
			EventSheetName: cfg.Sheets.EventSheetName,
		},
	)

	if cfg.Schema.ValidateHeaders {
		validateHeaders(ctx, dashboardService, cfg.Schema.StrictHeaders)
	}

	if xlsx, ok := client.(*xlsxclient.XLSXClient); ok && cfg.Sheets.XLSXWatch {
		err := xlsx.Watch(ctx, func() {
			if err := dashboardService.ClearCache(context.Background()); err != nil {
				logrus.WithError(err).Error("Erro ao limpar o cache após alteração da planilha")
			}
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao observar a planilha local")
		}
	}

	authenticator := authenticating.NewService(cfg.Auth)

	cacheWarmupService := scheduler.NewCacheWarmupService(dashboardService, cfg)
	if err := cacheWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do cache")
	} else {
		logrus.Info("Agendador de aquecimento do cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		authenticator,
		handler.CronJobServices{CacheWarmupService: cacheWarmupService},
		closers...,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// cacheStore escolhe o backend do cache. O segundo retorno libera a conexão, quando existir.
func cacheStore(ctx context.Context, cfg config.Cache) (cache.Store, func() error) {
	if cfg.Backend != config.CacheBackendRedis {
		logrus.Info("Usando cache em memória")
		return cache.NewMemoryStore(), nil
	}

	store, err := cache.NewRedisStoreFromURL(ctx, cfg.RedisURL, cfg.RedisPrefix)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("prefix", cfg.RedisPrefix).Info("Usando cache no Redis")
	return store, store.Close
}

// sheetsClient cria o cliente da fonte configurada (Google Sheets ou planilha local)
func sheetsClient(ctx context.Context, cfg *config.Config) sheets.Client {
	if cfg.Sheets.Source == config.SourceXLSX {
		client, err := xlsxclient.NewClient(cfg.Sheets.XLSXPath)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao abrir a planilha local")
		}
		logrus.WithField("file", client.Path()).Info("Usando planilha local como fonte de dados")
		return client
	}

	credentials, err := cfg.Sheets.Credentials()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar credenciais do Google")
	}

	client, err := sheetsclient.NewClient(ctx, cfg.Sheets.SpreadsheetID, credentials)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do Google Sheets")
	}
	logrus.WithField("sheet", cfg.Sheets.SheetName).Info("Usando Google Sheets como fonte de dados")
	return client
}

// validateHeaders compara a linha de cabeçalho com o schema; em modo estrito aborta
func validateHeaders(ctx context.Context, service dashboarding.DashboardService, strict bool) {
	mismatches, err := service.ValidateHeaders(ctx)
	if err != nil {
		if strict {
			logrus.WithError(err).Fatal("Não foi possível validar o cabeçalho da planilha")
		}
		logrus.WithError(err).Warn("Não foi possível validar o cabeçalho da planilha")
		return
	}

	if len(mismatches) == 0 {
		logrus.Info("Cabeçalho da planilha confere com o schema")
		return
	}

	found := make([]string, 0, len(mismatches))
	for _, m := range mismatches {
		found = append(found, m.String())
	}

	entry := logrus.WithField("mismatches", strings.Join(found, "; "))
	if strict {
		entry.Fatal("Cabeçalho da planilha diverge do schema")
	}
	entry.Warn("Cabeçalho da planilha diverge do schema")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
