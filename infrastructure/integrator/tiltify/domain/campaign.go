package tiltifydomain

// Campaign is the wire representation of a Tiltify campaign. Timestamps are
// unix milliseconds; a zero EndsAt means the campaign has no scheduled end.
type Campaign struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	StartsAt    int64  `json:"startsAt"`
	EndsAt      int64  `json:"endsAt"`
}

// CampaignResponse wraps the single-campaign endpoint payload.
type CampaignResponse struct {
	Meta Meta     `json:"meta"`
	Data Campaign `json:"data"`
}

// SupportingCampaignsResponse wraps the supporting-campaigns listing.
type SupportingCampaignsResponse struct {
	Meta Meta       `json:"meta"`
	Data []Campaign `json:"data"`
}

type Meta struct {
	Status int `json:"status"`
}
