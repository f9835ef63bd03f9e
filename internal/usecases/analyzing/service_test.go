package analyzing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/GeeScot/donation-analytics-core/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func donation(amount float64, completedAt time.Time) domain.Donation {
	return domain.Donation{
		Amount:      amount,
		Name:        "donor",
		CompletedAt: completedAt,
	}
}

func TestAnalyze_EmptySet(t *testing.T) {
	service := NewService()

	assert.Nil(t, service.Analyze(nil))
	assert.Nil(t, service.Analyze([]domain.Donation{}))
}

func TestAnalyze_CampaignScenario(t *testing.T) {
	service := NewService()

	t0 := time.Date(2023, 11, 4, 18, 12, 30, 0, time.UTC)
	donations := []domain.Donation{
		donation(5, t0),
		donation(15, t0.Add(time.Hour)),
		donation(600, t0.Add(time.Hour)),
	}

	analytics := service.Analyze(donations)
	require.NotNil(t, analytics)

	assert.Equal(t, 620.0, analytics.Total)
	assert.Equal(t, 206.67, analytics.Average)
	assert.Equal(t, 3, analytics.Count)

	require.Len(t, analytics.HourlyDonations, 2)
	assert.Equal(t, "2023-11-04T18:00:00.000Z", analytics.HourlyDonations[0].Hour)
	assert.Equal(t, 5.0, analytics.HourlyDonations[0].Total)
	assert.Equal(t, 1, analytics.HourlyDonations[0].Count)
	assert.Equal(t, 0.0, analytics.HourlyDonations[0].StandardDeviation)

	assert.Equal(t, "2023-11-04T19:00:00.000Z", analytics.HourlyDonations[1].Hour)
	assert.Equal(t, 615.0, analytics.HourlyDonations[1].Total)
	assert.Equal(t, 2, analytics.HourlyDonations[1].Count)
	assert.Equal(t, 307.5, analytics.HourlyDonations[1].Average)
	assert.Equal(t, 292.5, analytics.HourlyDonations[1].StandardDeviation)

	require.Len(t, analytics.HourlyBalance, 2)
	assert.Equal(t, 5.0, analytics.HourlyBalance[0].Balance)
	assert.Equal(t, 620.0, analytics.HourlyBalance[1].Balance)

	groups := groupCounts(analytics.Groups)
	assert.Equal(t, 1, groups[GroupOneToTen])
	assert.Equal(t, 1, groups[GroupTenToFifty])
	assert.Equal(t, 1, groups[GroupOverFiveHundred])
	assert.Equal(t, 0, groups[GroupFiftyToTwoHundred])
	assert.Equal(t, 0, groups[GroupTwoToFiveHundred])
	assert.Equal(t, 0, groups[GroupUnderOne])
}

func TestAnalyze_OrderIndependent(t *testing.T) {
	service := NewService()

	t0 := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	donations := []domain.Donation{
		donation(12.5, t0),
		donation(0.5, t0.Add(10*time.Minute)),
		donation(75, t0.Add(time.Hour)),
		donation(230, t0.Add(2*time.Hour)),
		donation(501, t0.Add(2*time.Hour).Add(30*time.Minute)),
		donation(3, t0.Add(3*time.Hour)),
	}

	expected := service.Analyze(donations)
	require.NotNil(t, expected)

	shuffled := make([]domain.Donation, len(donations))
	copy(shuffled, donations)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, expected, service.Analyze(shuffled))
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	service := NewService()

	t0 := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	donations := []domain.Donation{
		donation(10.555, t0),
		donation(20.125, t0.Add(45*time.Minute)),
		donation(33.33, t0.Add(90*time.Minute)),
	}

	first := service.Analyze(donations)
	second := service.Analyze(donations)
	assert.Equal(t, first, second)
}

func TestAnalyze_RunningBalanceMatchesTotal(t *testing.T) {
	service := NewService()

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(7))

	donations := make([]domain.Donation, 0, 200)
	for i := 0; i < 200; i++ {
		amount := float64(rng.Intn(100000)) / 100
		completedAt := t0.Add(time.Duration(rng.Intn(72)) * time.Hour).Add(time.Duration(rng.Intn(3600)) * time.Second)
		donations = append(donations, donation(amount, completedAt))
	}

	analytics := service.Analyze(donations)
	require.NotNil(t, analytics)
	require.NotEmpty(t, analytics.HourlyBalance)

	var bucketSum float64
	for _, bucket := range analytics.HourlyDonations {
		bucketSum += bucket.Total
	}

	lastBalance := analytics.HourlyBalance[len(analytics.HourlyBalance)-1].Balance
	assert.InDelta(t, bucketSum, lastBalance, 0.01)
	assert.InDelta(t, analytics.Total, lastBalance, 0.01)
}

func TestAnalyze_GroupsPartitionDonations(t *testing.T) {
	service := NewService()

	t0 := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	donations := []domain.Donation{
		donation(0.25, t0),  // under $1
		donation(1, t0),     // boundary: lowest band includes 1
		donation(10, t0),    // boundary: still lowest band
		donation(10.01, t0), // next band starts just above 10
		donation(50, t0),
		donation(50.01, t0),
		donation(200, t0),
		donation(200.01, t0),
		donation(500, t0),
		donation(500.01, t0),
	}

	analytics := service.Analyze(donations)
	require.NotNil(t, analytics)

	groups := groupCounts(analytics.Groups)
	assert.Equal(t, 2, groups[GroupOneToTen])
	assert.Equal(t, 2, groups[GroupTenToFifty])
	assert.Equal(t, 2, groups[GroupFiftyToTwoHundred])
	assert.Equal(t, 2, groups[GroupTwoToFiveHundred])
	assert.Equal(t, 1, groups[GroupOverFiveHundred])
	assert.Equal(t, 1, groups[GroupUnderOne])

	// The five bands partition exactly the donations of one unit or more.
	atLeastOne := 0
	for _, d := range donations {
		if d.Amount >= 1 {
			atLeastOne++
		}
	}
	banded := groups[GroupOneToTen] + groups[GroupTenToFifty] + groups[GroupFiftyToTwoHundred] +
		groups[GroupTwoToFiveHundred] + groups[GroupOverFiveHundred]
	assert.Equal(t, atLeastOne, banded)
}

func TestAnalyze_NonUTCTimestampsBucketByUTCHour(t *testing.T) {
	service := NewService()

	loc := time.FixedZone("UTC+2", 2*60*60)
	// 01:30 +02:00 is 23:30 UTC the previous day.
	local := time.Date(2024, 6, 2, 1, 30, 0, 0, loc)

	analytics := service.Analyze([]domain.Donation{donation(20, local)})
	require.NotNil(t, analytics)
	require.Len(t, analytics.HourlyDonations, 1)
	assert.Equal(t, "2024-06-01T23:00:00.000Z", analytics.HourlyDonations[0].Hour)
}

func groupCounts(groups []domain.DonationGroup) map[string]int {
	counts := make(map[string]int, len(groups))
	for _, group := range groups {
		counts[group.Key] = group.Count
	}
	return counts
}
