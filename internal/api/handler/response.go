package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const StatusSuccess = "success"

// Response é o envelope de sucesso de todos os endpoints do dashboard
type Response struct {
	Status     string             `json:"status"`
	Message    string             `json:"message,omitempty"`
	Data       any                `json:"data,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeData(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{Status: StatusSuccess, Message: message, Data: data})
}

// writeServiceError traduz o erro do serviço no código da API.
// Erros não classificados viram SRV_001 com mensagem genérica. Cliente que
// desconectou não recebe corpo.
func writeServiceError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	logger := log.ForContext(r.Context()).WithField("endpoint", endpoint)

	var dashErr *dashboarding.DashboardError
	switch {
	case errors.Is(err, context.Canceled):
		logger.WithError(err).Debug("Requisição cancelada pelo cliente")
	case errors.As(err, &dashErr):
		logger.WithField("cache_key", dashErr.CacheKey).WithError(err).Warn("Falha ao processar requisição do dashboard")
		apiErrors.WriteError(w, dashErr.Code, messageFor(dashErr.Code), nil)
	case errors.Is(err, context.DeadlineExceeded):
		logger.WithError(err).Warn("Tempo esgotado ao consultar a planilha")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, messageFor(apiErrors.ErrExternalService), nil)
	default:
		logger.WithError(err).Error("Erro inesperado ao processar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, messageFor(apiErrors.ErrInternalServer), nil)
	}
}

func messageFor(code string) string {
	switch code {
	case apiErrors.ErrNoDataFound:
		return "No data found"
	case apiErrors.ErrExternalService:
		return "Failed to fetch data from spreadsheet"
	case apiErrors.ErrCacheOperation:
		return "Cache operation failed"
	default:
		return "Internal server error"
	}
}
