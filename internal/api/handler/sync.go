package handler

import (
	"net/http"

	"github.com/GeeScot/donation-analytics-core/internal/scheduler"
	"github.com/GeeScot/donation-analytics-core/pkg/apiErrors"
	"github.com/GeeScot/donation-analytics-core/pkg/log"
)

// RunSyncJob triggers the campaign warm-up job outside its cron schedule.
func RunSyncJob(syncService *scheduler.CampaignSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("sync: manual campaign sync requested")

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "campaign sync service not available", nil)
			return
		}

		started := syncService.TriggerManualSync(r.Context())
		if !started {
			writeJSON(w, logger, map[string]any{"message": "campaign sync already running"})
			return
		}

		writeJSON(w, logger, map[string]any{"message": "campaign sync started"})
	})
}

// GetSyncStatus reports the warm-up job's current state.
func GetSyncStatus(syncService *scheduler.CampaignSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "campaign sync service not available", nil)
			return
		}

		writeJSON(w, logger, syncService.Status())
	})
}
