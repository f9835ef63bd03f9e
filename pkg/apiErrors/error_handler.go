package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Campaign state errors (CMP)
	ErrCampaignNotConcluded = "CMP_001" // campaign has not ended yet
	ErrDonationsNotCached   = "CMP_002" // stats requested before donations were cached
	ErrNoDonations          = "CMP_003" // cached donation set is empty, nothing to aggregate
	ErrCampaignNotFound     = "CMP_004" // campaign unknown upstream
	ErrAnalyticsNotCached   = "CMP_005" // analytics read before being calculated

	// Validation errors (VAL)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"

	// Server errors (SRV)
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrCampaignNotConcluded: http.StatusConflict,
	ErrDonationsNotCached:   http.StatusPreconditionFailed,
	ErrNoDonations:          http.StatusUnprocessableEntity,
	ErrCampaignNotFound:     http.StatusNotFound,
	ErrAnalyticsNotCached:   http.StatusPreconditionFailed,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
}

// APIError is the standardized error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
