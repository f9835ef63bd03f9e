package handler

import (
	"net/http"

	"github.com/GeeScot/donation-analytics-core/internal/api/handler/router"
	"github.com/GeeScot/donation-analytics-core/internal/scheduler"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/campaigning"
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

func Campaigns(service campaigning.Campaigner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/:account/:slug",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:account/:slug/cache",
			Method:  http.MethodPost,
			Handler: CacheCampaignDonations(service),
		},
		{
			Path:    "/v1/campaigns/:account/:slug/calculate",
			Method:  http.MethodPost,
			Handler: CalculateCampaignStats(service),
		},
		{
			Path:    "/v1/campaigns/:account/:slug/reset",
			Method:  http.MethodPost,
			Handler: ResetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:account/:slug/donations",
			Method:  http.MethodGet,
			Handler: GetCampaignDonations(service),
		},
		{
			Path:    "/v1/campaigns/:account/:slug/analytics",
			Method:  http.MethodGet,
			Handler: GetCampaignAnalytics(service),
		},
	}
}

func Sync(syncService *scheduler.CampaignSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: RunSyncJob(syncService),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(syncService),
		},
	}
}
