package analyzing

import (
	"math"
	"sort"
	"time"

	"github.com/GeeScot/donation-analytics-core/internal/domain"
	"github.com/GeeScot/donation-analytics-core/pkg/utils"
)

// Amount histogram band labels. Bands are [1,10], (10,50], (50,200],
// (200,500], (500,inf); donations under one unit are reported separately
// instead of being dropped.
const (
	GroupOneToTen          = "$1 - $10"
	GroupTenToFifty        = "$10.01 - $50"
	GroupFiftyToTwoHundred = "$50.01 - $200"
	GroupTwoToFiveHundred  = "$200.01 - $500"
	GroupOverFiveHundred   = "Over $500"
	GroupUnderOne          = "Under $1"
)

// Analyzer computes campaign analytics from a donation set. It performs no
// I/O; callers provide the complete set in memory.
type Analyzer interface {
	Analyze(donations []domain.Donation) *domain.CampaignAnalytics
}

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}

// Analyze derives the full analytics result for a donation set. An empty set
// yields nil: there is nothing to report and callers must not cache a
// zero-valued result. The computation only depends on the multiset of
// donations, so input order never changes the output.
func (s *Service) Analyze(donations []domain.Donation) *domain.CampaignAnalytics {
	if len(donations) == 0 {
		return nil
	}

	var total float64
	for _, donation := range donations {
		total += donation.Amount
	}
	average := total / float64(len(donations))

	hourly := s.hourlyDonations(donations)

	return &domain.CampaignAnalytics{
		Total:           utils.RoundWithTwoDecimalPlace(total),
		Average:         utils.RoundWithTwoDecimalPlace(average),
		Count:           len(donations),
		HourlyDonations: hourly,
		HourlyBalance:   s.hourlyBalance(hourly),
		Groups:          s.donationGroups(donations),
	}
}

// hourlyDonations groups donations by the UTC hour they completed in and
// aggregates each bucket, sorted ascending by bucket key.
func (s *Service) hourlyDonations(donations []domain.Donation) []domain.HourlyDonations {
	buckets := make(map[string][]float64)
	for _, donation := range donations {
		hour := hourKey(donation.CompletedAt)
		buckets[hour] = append(buckets[hour], donation.Amount)
	}

	hours := make([]string, 0, len(buckets))
	for hour := range buckets {
		hours = append(hours, hour)
	}
	sort.Strings(hours)

	hourly := make([]domain.HourlyDonations, 0, len(hours))
	for _, hour := range hours {
		amounts := buckets[hour]

		var total float64
		for _, amount := range amounts {
			total += amount
		}
		average := total / float64(len(amounts))

		var sumOfSquares float64
		for _, amount := range amounts {
			deviation := amount - average
			sumOfSquares += deviation * deviation
		}
		standardDeviation := math.Sqrt(sumOfSquares / float64(len(amounts)))

		hourly = append(hourly, domain.HourlyDonations{
			Hour:              hour,
			Average:           utils.RoundWithTwoDecimalPlace(average),
			StandardDeviation: utils.RoundWithTwoDecimalPlace(standardDeviation),
			Total:             utils.RoundWithTwoDecimalPlace(total),
			Count:             len(amounts),
		})
	}

	return hourly
}

// hourlyBalance is the prefix sum of hourly totals in bucket order.
func (s *Service) hourlyBalance(hourly []domain.HourlyDonations) []domain.HourlyBalance {
	balances := make([]domain.HourlyBalance, 0, len(hourly))

	var runningTotal float64
	for _, bucket := range hourly {
		runningTotal += bucket.Total
		balances = append(balances, domain.HourlyBalance{
			Hour:    bucket.Hour,
			Balance: utils.RoundWithTwoDecimalPlace(runningTotal),
		})
	}

	return balances
}

func (s *Service) donationGroups(donations []domain.Donation) []domain.DonationGroup {
	var underOne, oneToTen, tenToFifty, fiftyToTwoHundred, twoToFiveHundred, overFiveHundred int

	for _, donation := range donations {
		amount := donation.Amount
		switch {
		case amount < 1:
			underOne++
		case amount <= 10:
			oneToTen++
		case amount <= 50:
			tenToFifty++
		case amount <= 200:
			fiftyToTwoHundred++
		case amount <= 500:
			twoToFiveHundred++
		default:
			overFiveHundred++
		}
	}

	return []domain.DonationGroup{
		{Key: GroupOneToTen, Count: oneToTen},
		{Key: GroupTenToFifty, Count: tenToFifty},
		{Key: GroupFiftyToTwoHundred, Count: fiftyToTwoHundred},
		{Key: GroupTwoToFiveHundred, Count: twoToFiveHundred},
		{Key: GroupOverFiveHundred, Count: overFiveHundred},
		{Key: GroupUnderOne, Count: underOne},
	}
}

// hourKey floors a timestamp to its UTC hour, rendered the same way the
// cached payloads have always stored it.
func hourKey(t time.Time) string {
	return t.UTC().Truncate(time.Hour).Format("2006-01-02T15:04:05") + ".000Z"
}
