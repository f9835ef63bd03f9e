package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify"
	"github.com/GeeScot/donation-analytics-core/internal/config"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/campaigning"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// CampaignSyncConfig holds the scheduling knobs of the campaign warm-up job.
type CampaignSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
	TrackedCampaigns    []string
}

// SyncStatus is a point-in-time snapshot of the warm-up job.
type SyncStatus struct {
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"lastSyncStartedAt,omitempty"`
	LastSyncCompletedAt *time.Time `json:"lastSyncCompletedAt,omitempty"`
	TrackedCampaigns    int        `json:"trackedCampaigns"`
}

// CampaignSyncService warms the donation cache and analytics for a configured
// list of campaigns on a cron schedule, so the first read after a campaign
// concludes does not pay the full Tiltify pagination walk.
type CampaignSyncService struct {
	scheduler       *gocron.Scheduler
	config          CampaignSyncConfig
	campaignService campaigning.Campaigner

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCampaignSyncService(
	campaignService campaigning.Campaigner,
	appConfig *config.Config,
) *CampaignSyncService {
	syncConfig := CampaignSyncConfig{
		CronSchedule:        appConfig.CampaignSync.CronSchedule,
		RequestDelaySeconds: appConfig.CampaignSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.CampaignSync.Enabled,
		TrackedCampaigns:    appConfig.CampaignSync.TrackedCampaigns,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
		"tracked_campaigns":     len(syncConfig.TrackedCampaigns),
	}).Info("scheduler: campaign sync configuration loaded")

	return &CampaignSyncService{
		scheduler:       gocron.NewScheduler(time.UTC),
		config:          syncConfig,
		campaignService: campaignService,
	}
}

// Start schedules the warm-up job and runs the scheduler until ctx is done.
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: campaign sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting campaign sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduler: failed to schedule campaign sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping campaign sync")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the warm-up job once, outside the cron schedule.
// It reports whether a run was started.
func (s *CampaignSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return false
	}
	s.syncMutex.Unlock()

	go s.syncAllCampaigns(ctx)
	return true
}

// Status reports whether a run is in flight and when the last one ran.
func (s *CampaignSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Running:          s.syncRunning,
		TrackedCampaigns: len(s.config.TrackedCampaigns),
	}
	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}
	return status
}

func (s *CampaignSyncService) syncAllCampaigns(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: campaign sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	if len(s.config.TrackedCampaigns) == 0 {
		logrus.Info("scheduler: no tracked campaigns configured for sync")
		return
	}

	logrus.WithField("campaigns", len(s.config.TrackedCampaigns)).
		Info("scheduler: starting campaign sync run")

	synced := 0
	for i, tracked := range s.config.TrackedCampaigns {
		accountID, slug, err := splitTrackedCampaign(tracked)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign": tracked,
				"error":    err.Error(),
			}).Warn("scheduler: skipping malformed tracked campaign")
			continue
		}

		if i > 0 && s.config.RequestDelaySeconds > 0 {
			select {
			case <-ctx.Done():
				logrus.Info("scheduler: campaign sync run cancelled")
				return
			case <-time.After(time.Duration(s.config.RequestDelaySeconds) * time.Second):
			}
		}

		if err := s.syncCampaign(ctx, accountID, slug); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"slug":       slug,
				"error":      err.Error(),
			}).Error("scheduler: failed to sync campaign")
			continue
		}
		synced++
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"synced":   synced,
		"tracked":  len(s.config.TrackedCampaigns),
	}).Info("scheduler: campaign sync run completed")
}

func (s *CampaignSyncService) syncCampaign(ctx context.Context, accountID, slug string) error {
	err := s.campaignService.CacheDonations(ctx, accountID, slug)
	if errors.Is(err, tiltify.ErrCampaignNotConcluded) {
		// Still running, nothing to warm up yet. Try again on the next run.
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"slug":       slug,
		}).Debug("scheduler: campaign not concluded yet, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	return s.campaignService.CalculateStats(ctx, accountID, slug)
}

// splitTrackedCampaign parses a "<account>/<slug>" entry.
func splitTrackedCampaign(tracked string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(tracked), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected <account>/<slug>, got %q", tracked)
	}
	return parts[0], parts[1], nil
}
