package domain

import "time"

// Donation is a single contribution record ingested from the donation
// platform. Donations are immutable once cached; CompletedAt drives all
// ordering and bucketing.
type Donation struct {
	ExternalID  int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Name        string    `json:"name"`
	Comment     string    `json:"comment,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Sustained   bool      `json:"sustained"`
}
