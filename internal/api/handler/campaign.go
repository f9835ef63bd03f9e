package handler

import (
	"errors"
	"net/http"

	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify"
	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/tiltifyclient"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/campaigning"
	"github.com/GeeScot/donation-analytics-core/pkg/apiErrors"
	"github.com/GeeScot/donation-analytics-core/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// campaignParams pulls the account and slug path parameters. Normalization
// of sigils and casing happens inside the campaign service.
func campaignParams(r *http.Request) (string, string) {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("account"), params.ByName("slug")
}

// writeCampaignError maps service errors onto the standardized API error
// payload.
func writeCampaignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tiltify.ErrCampaignNotConcluded):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotConcluded, "campaign has not concluded yet", nil)
	case errors.Is(err, campaigning.ErrDonationsNotCached):
		apiErrors.WriteError(w, apiErrors.ErrDonationsNotCached, "donations have not been cached for this campaign", nil)
	case errors.Is(err, campaigning.ErrNoDonations):
		apiErrors.WriteError(w, apiErrors.ErrNoDonations, "campaign has no donations to aggregate", nil)
	case errors.Is(err, campaigning.ErrAnalyticsNotCached):
		apiErrors.WriteError(w, apiErrors.ErrAnalyticsNotCached, "analytics have not been calculated for this campaign", nil)
	case errors.Is(err, tiltifyclient.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "campaign not found", nil)
	case errors.Is(err, tiltify.ErrPaginationCycle):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "upstream pagination misbehaved", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("campaigns: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func GetCampaign(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		accountID, slug := campaignParams(r)

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"slug":       slug,
		}).Info("campaigns: fetching campaign metadata")

		campaign, err := service.GetCampaign(r.Context(), accountID, slug)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to fetch campaign")
			writeCampaignError(w, err)
			return
		}

		writeJSON(w, logger, campaign)
	})
}

func CacheCampaignDonations(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		accountID, slug := campaignParams(r)

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"slug":       slug,
		}).Info("campaigns: caching donation set")

		if err := service.CacheDonations(r.Context(), accountID, slug); err != nil {
			logger.WithError(err).Error("campaigns: failed to cache donations")
			writeCampaignError(w, err)
			return
		}

		writeJSON(w, logger, map[string]any{"message": "donations cached"})
	})
}

func CalculateCampaignStats(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		accountID, slug := campaignParams(r)

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"slug":       slug,
		}).Info("campaigns: calculating analytics")

		if err := service.CalculateStats(r.Context(), accountID, slug); err != nil {
			logger.WithError(err).Error("campaigns: failed to calculate analytics")
			writeCampaignError(w, err)
			return
		}

		writeJSON(w, logger, map[string]any{"message": "analytics calculated"})
	})
}

func ResetCampaign(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		accountID, slug := campaignParams(r)

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"slug":       slug,
		}).Info("campaigns: resetting campaign state")

		if err := service.Reset(r.Context(), accountID, slug); err != nil {
			logger.WithError(err).Error("campaigns: failed to reset campaign")
			writeCampaignError(w, err)
			return
		}

		writeJSON(w, logger, map[string]any{"message": "campaign state reset"})
	})
}

func GetCampaignDonations(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		accountID, slug := campaignParams(r)

		donations, err := service.GetDonations(r.Context(), accountID, slug)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to list donations")
			writeCampaignError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":     accountID,
			"slug":           slug,
			"donation_count": len(donations),
		}).Info("campaigns: returning cached donation set")

		writeJSON(w, logger, donations)
	})
}

func GetCampaignAnalytics(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		accountID, slug := campaignParams(r)

		analytics, err := service.GetAnalytics(r.Context(), accountID, slug)
		if err != nil {
			logger.WithError(err).Error("campaigns: failed to get analytics")
			writeCampaignError(w, err)
			return
		}

		writeJSON(w, logger, analytics)
	})
}
