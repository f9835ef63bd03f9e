package tiltifyclient

import (
	"context"
	"fmt"

	tiltifydomain "github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/domain"
	"github.com/GeeScot/donation-analytics-core/internal/config"
	"github.com/go-resty/resty/v2"
)

// Account sub-routes on the campaign endpoint.
const (
	SubRouteUsers = "users"
	SubRouteTeams = "teams"
)

type Client interface {
	GetCampaign(ctx context.Context, subRoute, accountID, slug string) (*tiltifydomain.Campaign, error)
	GetSupportingCampaigns(ctx context.Context, campaignID int64) ([]tiltifydomain.Campaign, error)
	GetDonationsPage(ctx context.Context, pageURL string) (*tiltifydomain.DonationsPage, error)
	FirstDonationsPageURL(campaignID int64) string
}

type TiltifyClient struct {
	cfg    *config.Config
	client *resty.Client
}

func NewClient(cfg *config.Config) Client {
	client := resty.New()
	client.SetBaseURL(cfg.Tiltify.URL)
	client.SetAuthToken(cfg.Tiltify.AppToken)
	client.SetHeader("Accept", "application/json")

	return &TiltifyClient{
		cfg:    cfg,
		client: client,
	}
}

// FirstDonationsPageURL builds the entry point of the donations pagination
// for a campaign. Subsequent pages come from the API's prev cursor.
func (c *TiltifyClient) FirstDonationsPageURL(campaignID int64) string {
	return fmt.Sprintf("/api/v3/campaigns/%d/donations?count=%d", campaignID, c.cfg.Tiltify.PageSize)
}
