package domain

import "time"

// Campaign is the metadata returned by the donation platform for a
// fundraising campaign.
type Campaign struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

// HasEnded reports whether the campaign concluded before the given instant.
// Campaigns without an end timestamp are treated as still running.
func (c *Campaign) HasEnded(now time.Time) bool {
	return c.EndsAt != nil && c.EndsAt.Before(now)
}

// CampaignResponse is the payload for the campaign metadata endpoint.
type CampaignResponse struct {
	IsCached bool      `json:"isCached"`
	Campaign *Campaign `json:"campaign"`
}
