package handler

import (
	"net/http"

	"github.com/vfg2006/event-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

// ClearCache descarta todos os valores em cache, brutos e derivados
func ClearCache(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.ClearCache(r.Context()); err != nil {
			writeServiceError(w, r, "clearCache", err)
			return
		}

		log.ForContext(r.Context()).Info("Cache limpo por requisição")
		writeJSON(w, http.StatusOK, Response{Status: StatusSuccess, Message: "Cache cleared successfully"})
	}
}

func CacheStatus(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := service.CacheStatus(r.Context())
		if err != nil {
			writeServiceError(w, r, "cacheStatus", err)
			return
		}
		writeData(w, "", status)
	}
}
