package tiltifyclient

import (
	"context"
	"encoding/json"

	tiltifydomain "github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetDonationsPage fetches one page of donations. pageURL is either the
// first-page URL or the prev cursor from an earlier page.
func (c *TiltifyClient) GetDonationsPage(ctx context.Context, pageURL string) (*tiltifydomain.DonationsPage, error) {
	resp, err := c.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, errors.Wrap(err, "tiltify: donations request failed")
	}

	if err := checkResponse(resp.StatusCode(), resp.Body(), pageURL); err != nil {
		return nil, err
	}

	var page tiltifydomain.DonationsPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		logrus.WithError(err).Error("tiltify: failed to decode donations page")
		return nil, err
	}

	return &page, nil
}
