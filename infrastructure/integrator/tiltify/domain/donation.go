package tiltifydomain

// Donation is the wire representation of a single donation record.
type Donation struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Name        string  `json:"name"`
	Comment     string  `json:"comment"`
	CompletedAt int64   `json:"completedAt"`
	UpdatedAt   int64   `json:"updatedAt"`
	Sustained   bool    `json:"sustained"`
}

// DonationsPage is one page of the paginated donations endpoint. Links.Prev
// is an opaque cursor URL pointing at the next older page.
type DonationsPage struct {
	Meta  Meta       `json:"meta"`
	Data  []Donation `json:"data"`
	Links Links      `json:"links"`
}

type Links struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
	Self string `json:"self"`
}
