package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/event-dashboard-api/internal/api/handler"
	"github.com/vfg2006/event-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/event-dashboard-api/internal/config"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/event-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

// NewHandler monta as rotas e a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	dashboardService dashboarding.DashboardService,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService)...),
		router.WithRoutes(handler.Filters(dashboardService)...),
		router.WithRoutes(handler.Cache(dashboardService)...),
		router.WithRoutes(handler.CronJobs(cronServices, authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	dashboardService dashboarding.DashboardService,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
	onShutdown ...func() error,
) (*Server, error) {
	if dashboardService == nil || authenticator == nil {
		return nil, fmt.Errorf("serviço de dashboard e autenticador são obrigatórios")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, dashboardService, authenticator, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: onShutdown,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o HTTP e depois libera os recursos registrados (redis, postgres)
func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	for _, closeFn := range s.onShutdown {
		if err := closeFn(); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}
