package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/campaign-sheet-sync/internal/api/handler/router"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/campaign"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync"
	"github.com/vfg2006/campaign-sheet-sync/pkg/metrics"
	"github.com/vfg2006/campaign-sheet-sync/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(gatherer),
		},
	}
}

func Campaigns(service campaign.CampaignService, syncer sheetsync.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/metrics",
			Method:  http.MethodGet,
			Handler: GetCampaignMetrics(service),
		},
		{
			Path:        "/v1/campaigns/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncCampaignSpreadsheet(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
