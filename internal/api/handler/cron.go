package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

// Tipos de cron job aceitos em /api/cron/:type/run
const (
	CronJobTypeCacheWarmup = "cache-warmup"
	CronJobTypeAll         = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	CacheWarmupService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.CacheWarmupService != nil {
		jobs[CronJobTypeCacheWarmup] = s.CacheWarmupService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		triggered := []string{}
		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				if job.TriggerManualSync() {
					triggered = append(triggered, name)
				}
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cache-warmup, all", nil)
				return
			}
			if job.TriggerManualSync() {
				triggered = append(triggered, cronType)
			}
		}

		logger.WithField("job", cronType).Info("Execução manual de cron job solicitada")

		message := "Cron job iniciada com sucesso"
		if len(triggered) == 0 {
			message = "Cron job já em andamento"
		}
		writeJSON(w, http.StatusAccepted, Response{
			Status:  StatusSuccess,
			Message: message,
			Data:    map[string]any{"type": cronType, "triggered": triggered},
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}
		writeData(w, "", status)
	}
}
