package domain

import "time"

// HourlyDonations aggregates the donations completed within a single UTC
// hour. Hour is the bucket start formatted as 2006-01-02T15:00:00.000Z, so
// the lexicographic order of bucket keys matches chronological order.
type HourlyDonations struct {
	Hour              string  `json:"hour"`
	Average           float64 `json:"average"`
	StandardDeviation float64 `json:"standardDeviation"`
	Total             float64 `json:"total"`
	Count             int     `json:"count"`
}

// HourlyBalance is the cumulative sum of hourly totals up to and including
// the named hour.
type HourlyBalance struct {
	Hour    string  `json:"hour"`
	Balance float64 `json:"balance"`
}

// DonationGroup is one band of the amount histogram.
type DonationGroup struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// CampaignAnalytics is the full derived result for one campaign's donation
// set. It is computed at most once per cached donation set and only
// invalidated by an explicit reset.
type CampaignAnalytics struct {
	Total            float64           `json:"total"`
	Average          float64           `json:"average"`
	Count            int               `json:"count"`
	HourlyDonations  []HourlyDonations `json:"hourlyDonations"`
	HourlyBalance    []HourlyBalance   `json:"hourlyBalance"`
	Groups           []DonationGroup   `json:"groups"`
}

// AnalyticsEntry is the stored form of a computed CampaignAnalytics, keyed
// by the campaign collection key.
type AnalyticsEntry struct {
	ID        string             `json:"id"`
	Key       string             `json:"key"`
	Data      *CampaignAnalytics `json:"data"`
	CreatedAt time.Time          `json:"createdAt"`
}
