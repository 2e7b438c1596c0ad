package handler

import (
	"net/http"

	"github.com/vfg2006/event-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/event-dashboard-api/pkg/middleware"
)

const apiPrefix = "/api"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/eventsArea",
			Method:  http.MethodGet,
			Handler: EventsArea(service),
		},
		{
			Path:    apiPrefix + "/eventsEJRegion",
			Method:  http.MethodGet,
			Handler: EventsRegion(service, domain.RegionEastJava),
		},
		{
			Path:    apiPrefix + "/eventsCJRegion",
			Method:  http.MethodGet,
			Handler: EventsRegion(service, domain.RegionCentralJava),
		},
		{
			Path:    apiPrefix + "/eventsBNRegion",
			Method:  http.MethodGet,
			Handler: EventsRegion(service, domain.RegionBaliNusra),
		},
		{
			Path:    apiPrefix + "/graphData",
			Method:  http.MethodGet,
			Handler: GraphData(service),
		},
		{
			Path:    apiPrefix + "/tableData",
			Method:  http.MethodGet,
			Handler: TableData(service),
		},
		{
			Path:    apiPrefix + "/actionSummary",
			Method:  http.MethodGet,
			Handler: ActionSummary(service),
		},
	}
}

func Filters(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/months",
			Method:  http.MethodGet,
			Handler: FilterOptions(service, aggregating.DimensionMonth),
		},
		{
			Path:    apiPrefix + "/actions",
			Method:  http.MethodGet,
			Handler: FilterOptions(service, aggregating.DimensionAction),
		},
		{
			Path:    apiPrefix + "/categories",
			Method:  http.MethodGet,
			Handler: FilterOptions(service, aggregating.DimensionCategory),
		},
	}
}

func Cache(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    apiPrefix + "/clearCache",
			Method:  http.MethodPost,
			Handler: ClearCache(service),
		},
		{
			Path:    apiPrefix + "/cacheStatus",
			Method:  http.MethodGet,
			Handler: CacheStatus(service),
		},
	}
}

func CronJobs(services CronJobServices, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        apiPrefix + "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
		{
			Path:        apiPrefix + "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(auth)},
		},
	}
}
