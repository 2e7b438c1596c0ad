package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/dashboarding"
)

func filtersFromQuery(r *http.Request) domain.QueryFilterSet {
	q := r.URL.Query()
	return domain.NewQueryFilterSet(q.Get("month"), q.Get("category"), q.Get("action"), "")
}

// EventsArea retorna o resumo de todas as regiões
func EventsArea(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.AreaSummary(r.Context(), filtersFromQuery(r))
		if err != nil {
			writeServiceError(w, r, "eventsArea", err)
			return
		}
		writeData(w, "", summary)
	}
}

// EventsRegion retorna o resumo de uma única região
func EventsRegion(service dashboarding.DashboardService, region string) http.HandlerFunc {
	message := fmt.Sprintf("Data retrieved successfully for %s", region)

	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.RegionSummary(r.Context(), region, filtersFromQuery(r))
		if err != nil {
			writeServiceError(w, r, "eventsRegion", err)
			return
		}
		writeData(w, message, summary)
	}
}

// FilterOptions retorna os valores distintos de uma dimensão
func FilterOptions(service dashboarding.DashboardService, dim aggregating.Dimension) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FilterOptions(r.Context(), dim)
		if err != nil {
			writeServiceError(w, r, string(dim), err)
			return
		}
		writeData(w, "", options)
	}
}

func GraphData(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		series, err := service.GraphData(r.Context())
		if err != nil {
			writeServiceError(w, r, "graphData", err)
			return
		}
		writeData(w, "", series)
	}
}

// TableData aplica busca, ordenação e paginação sobre as linhas agregadas.
// Parâmetros inválidos caem nos valores padrão.
func TableData(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query := domain.TableQuery{
			Page:        intParam(q.Get("page")),
			Limit:       intParam(q.Get("limit")),
			SortBy:      q.Get("sortBy"),
			SortOrder:   q.Get("sortOrder"),
			SearchQuery: q.Get("searchQuery"),
		}

		page, err := service.TableData(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, "tableData", err)
			return
		}

		data := page.Data
		if data == nil {
			data = []domain.EventRecord{}
		}
		writeJSON(w, http.StatusOK, Response{
			Status:     StatusSuccess,
			Data:       data,
			Pagination: &page.Pagination,
		})
	}
}

func ActionSummary(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.ActionSummary(r.Context())
		if err != nil {
			writeServiceError(w, r, "actionSummary", err)
			return
		}
		writeData(w, "", summary)
	}
}

func intParam(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
