package dashboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
)

var (
	ErrNoDataFound         = errors.New("nenhum dado encontrado")
	ErrUpstreamUnavailable = errors.New("fonte de dados indisponível")
	ErrCacheOperation      = errors.New("falha na operação de cache")
	ErrUnexpected          = errors.New("erro inesperado")
)

// DashboardError é um erro com contexto adicional para o dashboard
type DashboardError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	CacheKey string // Chave de cache envolvida (quando aplicável)
	Details  string // Detalhes adicionais
	cause    error
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap expõe o erro base e a causa original
func (e *DashboardError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// classify converte erros de infraestrutura no erro de domínio correspondente
func classify(err error, cacheKey string) error {
	if err == nil {
		return nil
	}

	var dashErr *DashboardError
	if errors.As(err, &dashErr) {
		return err
	}

	switch {
	case errors.Is(err, ErrNoDataFound):
		return &DashboardError{Err: ErrNoDataFound, Code: apiErrors.ErrNoDataFound, CacheKey: cacheKey, Details: "a planilha não retornou linhas"}
	case errors.Is(err, sheets.ErrUpstreamUnavailable):
		return &DashboardError{Err: ErrUpstreamUnavailable, Code: apiErrors.ErrExternalService, CacheKey: cacheKey, cause: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return &DashboardError{Err: ErrUnexpected, Code: apiErrors.ErrInternalServer, CacheKey: cacheKey, cause: err}
	}
}
