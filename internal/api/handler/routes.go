package handler

import (
	"net/http"

	"github.com/vfg2006/meta-hourly-insights/internal/api/handler/router"
	"github.com/vfg2006/meta-hourly-insights/internal/usecases/insighting"
	"github.com/vfg2006/meta-hourly-insights/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func Insights(service insighting.Fetcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/insights/hourly",
			Method:      http.MethodGet,
			Handler:     GetHourlyInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CanRunSync()},
		},
		{
			Path:        "/v1/token/verify",
			Method:      http.MethodGet,
			Handler:     VerifyToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CanReadSync()},
		},
	}
}

func Sync(service SyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CanRunSync()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CanReadSync()},
		},
	}
}
