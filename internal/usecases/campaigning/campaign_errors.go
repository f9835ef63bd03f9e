package campaigning

import "errors"

// Errors surfaced by the campaign orchestrator. Upstream fetch failures and
// the not-concluded precondition propagate from the tiltify integrator.
var (
	// ErrDonationsNotCached means stats or reads were requested before the
	// campaign's donation set was cached.
	ErrDonationsNotCached = errors.New("donations have not been cached for this campaign")

	// ErrNoDonations means the cached donation set is empty, so there is
	// nothing to aggregate and no analytics record is written.
	ErrNoDonations = errors.New("campaign has no donations to aggregate")

	// ErrAnalyticsNotCached means analytics were read before being calculated.
	ErrAnalyticsNotCached = errors.New("analytics have not been calculated for this campaign")
)
