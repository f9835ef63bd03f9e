package campaigning

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify"
	tiltifymocks "github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify/mocks"
	"github.com/GeeScot/donation-analytics-core/infrastructure/repository/mocks"
	"github.com/GeeScot/donation-analytics-core/internal/domain"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/analyzing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKey = "donations_geescot_beat-saber-marathon"

type serviceMocks struct {
	integrator    *tiltifymocks.MockIntegrator
	donationRepo  *mocks.MockDonationRepository
	analyticsRepo *mocks.MockAnalyticsRepository
}

func newTestService(t *testing.T) (Campaigner, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		integrator:    tiltifymocks.NewMockIntegrator(ctrl),
		donationRepo:  mocks.NewMockDonationRepository(ctrl),
		analyticsRepo: mocks.NewMockAnalyticsRepository(ctrl),
	}

	service := NewService(m.integrator, m.donationRepo, m.analyticsRepo, analyzing.NewService())
	return service, m
}

func testDonations() []domain.Donation {
	t0 := time.Date(2023, 11, 4, 18, 0, 0, 0, time.UTC)
	return []domain.Donation{
		{ExternalID: 1, Amount: 5, Name: "a", CompletedAt: t0},
		{ExternalID: 2, Amount: 15, Name: "b", CompletedAt: t0.Add(time.Hour)},
		{ExternalID: 3, Amount: 600, Name: "c", CompletedAt: t0.Add(time.Hour)},
	}
}

func TestGetCampaign_ReportsCachedFlag(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	campaign := &domain.Campaign{ID: 42, Name: "Beat Saber Marathon"}
	m.integrator.EXPECT().
		GetCampaign(ctx, "@GeeScot", "Beat-Saber-Marathon").
		Return(campaign, nil)
	m.donationRepo.EXPECT().
		Exists(ctx, testKey).
		Return(true, nil)

	response, err := service.GetCampaign(ctx, "@GeeScot", "Beat-Saber-Marathon")
	require.NoError(t, err)
	assert.True(t, response.IsCached)
	assert.Equal(t, campaign, response.Campaign)
}

func TestCacheDonations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(m serviceMocks)
		expectedErr error
	}{
		{
			name: "no-op when donation set already exists",
			setup: func(m serviceMocks) {
				m.donationRepo.EXPECT().
					Exists(ctx, testKey).
					Return(true, nil)
			},
		},
		{
			name: "fetches and inserts the complete set exactly once",
			setup: func(m serviceMocks) {
				donations := testDonations()
				m.donationRepo.EXPECT().
					Exists(ctx, testKey).
					Return(false, nil)
				m.integrator.EXPECT().
					GetAllDonations(ctx, "@GeeScot", "Beat-Saber-Marathon").
					Return(donations, nil)
				m.donationRepo.EXPECT().
					InsertAll(ctx, testKey, donations).
					Return(nil).
					Times(1)
			},
		},
		{
			name: "not concluded campaign leaves nothing behind",
			setup: func(m serviceMocks) {
				m.donationRepo.EXPECT().
					Exists(ctx, testKey).
					Return(false, nil)
				m.integrator.EXPECT().
					GetAllDonations(ctx, "@GeeScot", "Beat-Saber-Marathon").
					Return(nil, tiltify.ErrCampaignNotConcluded)
				// No InsertAll expectation: a failed fetch must not persist.
			},
			expectedErr: tiltify.ErrCampaignNotConcluded,
		},
		{
			name: "upstream failure propagates without persisting",
			setup: func(m serviceMocks) {
				m.donationRepo.EXPECT().
					Exists(ctx, testKey).
					Return(false, nil)
				m.integrator.EXPECT().
					GetAllDonations(ctx, "@GeeScot", "Beat-Saber-Marathon").
					Return(nil, errors.New("tiltify: request failed with status 502"))
			},
			expectedErr: errors.New("tiltify: request failed with status 502"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			err := service.CacheDonations(ctx, "@GeeScot", "Beat-Saber-Marathon")
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCalculateStats(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(m serviceMocks)
		expectedErr error
	}{
		{
			name: "computes and stores analytics",
			setup: func(m serviceMocks) {
				m.analyticsRepo.EXPECT().
					GetByKey(ctx, testKey).
					Return(nil, nil)
				m.donationRepo.EXPECT().
					Exists(ctx, testKey).
					Return(true, nil)
				m.donationRepo.EXPECT().
					ListAll(ctx, testKey).
					Return(testDonations(), nil)
				m.analyticsRepo.EXPECT().
					Save(ctx, testKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, analytics *domain.CampaignAnalytics) error {
						assert.Equal(t, 620.0, analytics.Total)
						assert.Equal(t, 206.67, analytics.Average)
						assert.Equal(t, 3, analytics.Count)
						return nil
					})
			},
		},
		{
			name: "no-op when analytics already stored",
			setup: func(m serviceMocks) {
				m.analyticsRepo.EXPECT().
					GetByKey(ctx, testKey).
					Return(&domain.AnalyticsEntry{Key: testKey, Data: &domain.CampaignAnalytics{}}, nil)
				// No further calls: the aggregation must not run again.
			},
		},
		{
			name: "fails when donations are not cached",
			setup: func(m serviceMocks) {
				m.analyticsRepo.EXPECT().
					GetByKey(ctx, testKey).
					Return(nil, nil)
				m.donationRepo.EXPECT().
					Exists(ctx, testKey).
					Return(false, nil)
			},
			expectedErr: ErrDonationsNotCached,
		},
		{
			name: "empty donation set writes nothing",
			setup: func(m serviceMocks) {
				m.analyticsRepo.EXPECT().
					GetByKey(ctx, testKey).
					Return(nil, nil)
				m.donationRepo.EXPECT().
					Exists(ctx, testKey).
					Return(true, nil)
				m.donationRepo.EXPECT().
					ListAll(ctx, testKey).
					Return([]domain.Donation{}, nil)
				// No Save expectation: a null result is never cached.
			},
			expectedErr: ErrNoDonations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			err := service.CalculateStats(ctx, "@GeeScot", "Beat-Saber-Marathon")
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCacheDonations_ConcurrentCallersFetchOnce(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	var mu sync.Mutex
	cached := false

	m.donationRepo.EXPECT().
		Exists(ctx, testKey).
		DoAndReturn(func(context.Context, string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			return cached, nil
		}).
		Times(2)
	m.integrator.EXPECT().
		GetAllDonations(ctx, "@GeeScot", "Beat-Saber-Marathon").
		Return(testDonations(), nil).
		Times(1)
	m.donationRepo.EXPECT().
		InsertAll(ctx, testKey, gomock.Any()).
		DoAndReturn(func(context.Context, string, []domain.Donation) error {
			mu.Lock()
			cached = true
			mu.Unlock()
			return nil
		}).
		Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.CacheDonations(ctx, "@GeeScot", "Beat-Saber-Marathon"))
		}()
	}
	wg.Wait()
}

func TestCalculateStats_ConcurrentCallersComputeOnce(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	var mu sync.Mutex
	var stored *domain.AnalyticsEntry

	m.analyticsRepo.EXPECT().
		GetByKey(ctx, testKey).
		DoAndReturn(func(context.Context, string) (*domain.AnalyticsEntry, error) {
			mu.Lock()
			defer mu.Unlock()
			return stored, nil
		}).
		Times(2)
	m.donationRepo.EXPECT().
		Exists(ctx, testKey).
		Return(true, nil).
		Times(1)
	m.donationRepo.EXPECT().
		ListAll(ctx, testKey).
		Return(testDonations(), nil).
		Times(1)
	m.analyticsRepo.EXPECT().
		Save(ctx, testKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, analytics *domain.CampaignAnalytics) error {
			mu.Lock()
			stored = &domain.AnalyticsEntry{Key: testKey, Data: analytics}
			mu.Unlock()
			return nil
		}).
		Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.CalculateStats(ctx, "@GeeScot", "Beat-Saber-Marathon"))
		}()
	}
	wg.Wait()
}

func TestCalculateStats_SecondCallIsNoOp(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	entry := &domain.AnalyticsEntry{Key: testKey, Data: &domain.CampaignAnalytics{Total: 620}}

	gomock.InOrder(
		m.analyticsRepo.EXPECT().GetByKey(ctx, testKey).Return(nil, nil),
		m.donationRepo.EXPECT().Exists(ctx, testKey).Return(true, nil),
		m.donationRepo.EXPECT().ListAll(ctx, testKey).Return(testDonations(), nil),
		m.analyticsRepo.EXPECT().Save(ctx, testKey, gomock.Any()).Return(nil),
		// Second invocation only checks the cache.
		m.analyticsRepo.EXPECT().GetByKey(ctx, testKey).Return(entry, nil),
	)

	require.NoError(t, service.CalculateStats(ctx, "@GeeScot", "Beat-Saber-Marathon"))
	require.NoError(t, service.CalculateStats(ctx, "@GeeScot", "Beat-Saber-Marathon"))
}

func TestReset_InvalidatesAnalyticsBeforeDroppingDonations(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	gomock.InOrder(
		m.analyticsRepo.EXPECT().DeleteByKey(ctx, testKey).Return(nil),
		m.donationRepo.EXPECT().Drop(ctx, testKey).Return(nil),
	)

	assert.NoError(t, service.Reset(ctx, "@GeeScot", "Beat-Saber-Marathon"))
}

func TestGetDonations_RequiresCachedSet(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	m.donationRepo.EXPECT().
		Exists(ctx, testKey).
		Return(false, nil)

	_, err := service.GetDonations(ctx, "@GeeScot", "Beat-Saber-Marathon")
	assert.ErrorIs(t, err, ErrDonationsNotCached)
}

func TestGetAnalytics_RequiresStoredEntry(t *testing.T) {
	service, m := newTestService(t)
	ctx := context.Background()

	m.analyticsRepo.EXPECT().
		GetByKey(ctx, testKey).
		Return(nil, nil)

	_, err := service.GetAnalytics(ctx, "@GeeScot", "Beat-Saber-Marathon")
	assert.ErrorIs(t, err, ErrAnalyticsNotCached)
}
