package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify"
	"github.com/GeeScot/donation-analytics-core/internal/config"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/campaigning/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, tracked []string) (*CampaignSyncService, *mocks.MockCampaigner) {
	ctrl := gomock.NewController(t)
	campaignService := mocks.NewMockCampaigner(ctrl)

	cfg := &config.Config{}
	cfg.CampaignSync.Enabled = true
	cfg.CampaignSync.CronSchedule = "0 5 * * *"
	cfg.CampaignSync.TrackedCampaigns = tracked

	return NewCampaignSyncService(campaignService, cfg), campaignService
}

func TestSyncAllCampaigns_WarmsEachTrackedCampaign(t *testing.T) {
	service, campaignService := newTestSyncService(t, []string{
		"@GeeScot/beat-saber-marathon",
		"+rainbow-team/charity-drive",
	})
	ctx := context.Background()

	gomock.InOrder(
		campaignService.EXPECT().CacheDonations(ctx, "@GeeScot", "beat-saber-marathon").Return(nil),
		campaignService.EXPECT().CalculateStats(ctx, "@GeeScot", "beat-saber-marathon").Return(nil),
		campaignService.EXPECT().CacheDonations(ctx, "+rainbow-team", "charity-drive").Return(nil),
		campaignService.EXPECT().CalculateStats(ctx, "+rainbow-team", "charity-drive").Return(nil),
	)

	service.syncAllCampaigns(ctx)

	status := service.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastSyncStartedAt)
	require.NotNil(t, status.LastSyncCompletedAt)
	assert.Equal(t, 2, status.TrackedCampaigns)
}

func TestSyncAllCampaigns_SkipsUnconcludedCampaigns(t *testing.T) {
	service, campaignService := newTestSyncService(t, []string{"@GeeScot/beat-saber-marathon"})
	ctx := context.Background()

	campaignService.EXPECT().
		CacheDonations(ctx, "@GeeScot", "beat-saber-marathon").
		Return(tiltify.ErrCampaignNotConcluded)
	// No CalculateStats expectation: there is nothing to aggregate yet.

	service.syncAllCampaigns(ctx)
}

func TestSyncAllCampaigns_ContinuesAfterFailure(t *testing.T) {
	service, campaignService := newTestSyncService(t, []string{
		"@GeeScot/beat-saber-marathon",
		"@GeeScot/winter-stream",
	})
	ctx := context.Background()

	campaignService.EXPECT().
		CacheDonations(ctx, "@GeeScot", "beat-saber-marathon").
		Return(errors.New("tiltify: request failed with status 502"))
	campaignService.EXPECT().
		CacheDonations(ctx, "@GeeScot", "winter-stream").
		Return(nil)
	campaignService.EXPECT().
		CalculateStats(ctx, "@GeeScot", "winter-stream").
		Return(nil)

	service.syncAllCampaigns(ctx)
}

func TestSyncAllCampaigns_SkipsMalformedEntries(t *testing.T) {
	service, campaignService := newTestSyncService(t, []string{
		"no-slash-here",
		"@GeeScot/beat-saber-marathon",
	})
	ctx := context.Background()

	campaignService.EXPECT().
		CacheDonations(ctx, "@GeeScot", "beat-saber-marathon").
		Return(nil)
	campaignService.EXPECT().
		CalculateStats(ctx, "@GeeScot", "beat-saber-marathon").
		Return(nil)

	service.syncAllCampaigns(ctx)
}

func TestSplitTrackedCampaign(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedAccount string
		expectedSlug    string
		expectedErr     bool
	}{
		{
			name:            "user campaign",
			input:           "@GeeScot/beat-saber-marathon",
			expectedAccount: "@GeeScot",
			expectedSlug:    "beat-saber-marathon",
		},
		{
			name:            "team campaign",
			input:           "+rainbow-team/charity-drive",
			expectedAccount: "+rainbow-team",
			expectedSlug:    "charity-drive",
		},
		{
			name:            "surrounding whitespace is trimmed",
			input:           "  @GeeScot/beat-saber-marathon  ",
			expectedAccount: "@GeeScot",
			expectedSlug:    "beat-saber-marathon",
		},
		{
			name:        "missing slug",
			input:       "@GeeScot",
			expectedErr: true,
		},
		{
			name:        "empty account",
			input:       "/beat-saber-marathon",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountID, slug, err := splitTrackedCampaign(tt.input)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAccount, accountID)
			assert.Equal(t, tt.expectedSlug, slug)
		})
	}
}

func TestStart_DisabledByConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaignService := mocks.NewMockCampaigner(ctrl)

	cfg := &config.Config{}
	cfg.CampaignSync.Enabled = false

	service := NewCampaignSyncService(campaignService, cfg)
	// No expectations on the campaign service: a disabled scheduler never runs.
	assert.NoError(t, service.Start(context.Background()))
}
