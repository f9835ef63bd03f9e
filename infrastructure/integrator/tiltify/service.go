package tiltify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tiltifydomain "github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/domain"
	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/tiltifyclient"
	"github.com/GeeScot/donation-analytics-core/internal/config"
	"github.com/GeeScot/donation-analytics-core/internal/domain"
	"github.com/sirupsen/logrus"
)

// ErrCampaignNotConcluded is returned when donations are requested for a
// campaign whose end timestamp is absent or still in the future. Donations
// are only aggregated for concluded campaigns.
var ErrCampaignNotConcluded = errors.New("campaign has not concluded yet")

// ErrPaginationCycle is returned when the upstream prev cursor repeats,
// which would otherwise loop forever.
var ErrPaginationCycle = errors.New("pagination cursor cycle detected")

type Integrator interface {
	GetCampaign(ctx context.Context, accountID, slug string) (*domain.Campaign, error)
	GetAllDonations(ctx context.Context, accountID, slug string) ([]domain.Donation, error)
}

type TiltifyIntegrator struct {
	cfg    *config.Config
	Client tiltifyclient.Client
}

func New(cfg *config.Config, client tiltifyclient.Client) *TiltifyIntegrator {
	return &TiltifyIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetCampaign resolves a campaign's metadata. A leading "+" on the account
// identifier marks a team account and selects the teams sub-route.
func (s *TiltifyIntegrator) GetCampaign(ctx context.Context, accountID, slug string) (*domain.Campaign, error) {
	subRoute := tiltifyclient.SubRouteUsers
	if strings.HasPrefix(accountID, "+") {
		subRoute = tiltifyclient.SubRouteTeams
	}
	accountID = strings.TrimLeft(accountID, "@+")

	campaign, err := s.Client.GetCampaign(ctx, subRoute, accountID, slug)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"slug":       slug,
			"error":      err.Error(),
		}).Error("tiltify: failed to get campaign from API")
		return nil, err
	}

	return toDomainCampaign(campaign), nil
}

// GetAllDonations fetches the complete donation set for a concluded
// campaign, including every supporting campaign that rolls up into it.
func (s *TiltifyIntegrator) GetAllDonations(ctx context.Context, accountID, slug string) ([]domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Tiltify.FetchTimeout)
	defer cancel()

	campaign, err := s.GetCampaign(ctx, accountID, slug)
	if err != nil {
		return nil, err
	}

	if !campaign.HasEnded(time.Now()) {
		return nil, fmt.Errorf("campaign %q: %w", campaign.Name, ErrCampaignNotConcluded)
	}

	supporting, err := s.Client.GetSupportingCampaigns(ctx, campaign.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("tiltify: failed to get supporting campaigns from API")
		return nil, err
	}

	campaignIDs := make([]int64, 0, len(supporting)+1)
	for _, supportingCampaign := range supporting {
		campaignIDs = append(campaignIDs, supportingCampaign.ID)
	}
	campaignIDs = append(campaignIDs, campaign.ID)

	// The platform guarantees disjoint donation ID spaces per sub-campaign,
	// so concatenation needs no dedup.
	allDonations := make([]domain.Donation, 0)
	for _, campaignID := range campaignIDs {
		donations, err := s.fetchCampaignDonations(ctx, campaignID)
		if err != nil {
			return nil, err
		}
		allDonations = append(allDonations, donations...)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":    campaign.ID,
		"sub_campaigns":  len(campaignIDs),
		"donation_count": len(allDonations),
	}).Info("tiltify: fetched complete donation set")

	return allDonations, nil
}

// fetchCampaignDonations walks the donations pagination backwards. A page
// holding exactly the requested count means more data; fewer means the end.
func (s *TiltifyIntegrator) fetchCampaignDonations(ctx context.Context, campaignID int64) ([]domain.Donation, error) {
	pageURL := s.Client.FirstDonationsPageURL(campaignID)
	seenCursors := map[string]struct{}{pageURL: {}}

	donations := make([]domain.Donation, 0)
	for {
		page, err := s.Client.GetDonationsPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		for _, wireDonation := range page.Data {
			donations = append(donations, toDomainDonation(wireDonation))
		}

		if len(page.Data) < s.cfg.Tiltify.PageSize {
			break
		}

		pageURL = page.Links.Prev
		if pageURL == "" {
			break
		}
		if _, seen := seenCursors[pageURL]; seen {
			return nil, fmt.Errorf("campaign %d: %w", campaignID, ErrPaginationCycle)
		}
		seenCursors[pageURL] = struct{}{}
	}

	return donations, nil
}

func toDomainCampaign(campaign *tiltifydomain.Campaign) *domain.Campaign {
	result := &domain.Campaign{
		ID:          campaign.ID,
		Name:        campaign.Name,
		Slug:        campaign.Slug,
		Description: campaign.Description,
	}

	if campaign.EndsAt != 0 {
		endsAt := msToTime(campaign.EndsAt)
		result.EndsAt = &endsAt
	}

	return result
}

func toDomainDonation(donation tiltifydomain.Donation) domain.Donation {
	return domain.Donation{
		ExternalID:  donation.ID,
		Amount:      donation.Amount,
		Name:        donation.Name,
		Comment:     donation.Comment,
		CompletedAt: msToTime(donation.CompletedAt),
		UpdatedAt:   msToTime(donation.UpdatedAt),
		Sustained:   donation.Sustained,
	}
}

// msToTime normalizes a wire timestamp (unix milliseconds) to UTC.
func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
