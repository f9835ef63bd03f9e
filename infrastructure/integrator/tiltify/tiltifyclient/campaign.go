package tiltifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	tiltifydomain "github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNotFound marks an upstream 404, usually a mistyped account or slug.
var ErrNotFound = errors.New("resource not found")

// GetCampaign fetches a campaign's metadata by account and slug. The
// sub-route distinguishes user campaigns from team campaigns.
func (c *TiltifyClient) GetCampaign(ctx context.Context, subRoute, accountID, slug string) (*tiltifydomain.Campaign, error) {
	targetURL := fmt.Sprintf("/api/v3/%s/%s/campaigns/%s", subRoute, accountID, slug)

	resp, err := c.client.R().SetContext(ctx).Get(targetURL)
	if err != nil {
		return nil, errors.Wrap(err, "tiltify: campaign request failed")
	}

	if err := checkResponse(resp.StatusCode(), resp.Body(), targetURL); err != nil {
		return nil, err
	}

	var response tiltifydomain.CampaignResponse
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		logrus.WithError(err).Error("tiltify: failed to decode campaign response")
		return nil, err
	}

	return &response.Data, nil
}

// GetSupportingCampaigns lists the sub-campaigns whose donations roll up
// into the given campaign.
func (c *TiltifyClient) GetSupportingCampaigns(ctx context.Context, campaignID int64) ([]tiltifydomain.Campaign, error) {
	targetURL := fmt.Sprintf("/api/v3/campaigns/%d/supporting-campaigns", campaignID)

	resp, err := c.client.R().SetContext(ctx).Get(targetURL)
	if err != nil {
		return nil, errors.Wrap(err, "tiltify: supporting campaigns request failed")
	}

	if err := checkResponse(resp.StatusCode(), resp.Body(), targetURL); err != nil {
		return nil, err
	}

	var response tiltifydomain.SupportingCampaignsResponse
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		logrus.WithError(err).Error("tiltify: failed to decode supporting campaigns response")
		return nil, err
	}

	return response.Data, nil
}

func checkResponse(statusCode int, body []byte, targetURL string) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	if statusCode == http.StatusNotFound {
		return fmt.Errorf("tiltify: request to %s failed: %w", targetURL, ErrNotFound)
	}

	var errResponse tiltifydomain.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Meta.Status != 0 {
		return fmt.Errorf("tiltify: request to %s failed: %s", targetURL, errResponse.String())
	}

	return fmt.Errorf("tiltify: request to %s failed with status %d", targetURL, statusCode)
}
