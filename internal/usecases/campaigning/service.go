package campaigning

import (
	"context"
	"sync"

	"github.com/GeeScot/donation-analytics-core/infrastructure/integrator/tiltify"
	"github.com/GeeScot/donation-analytics-core/infrastructure/repository"
	"github.com/GeeScot/donation-analytics-core/internal/domain"
	"github.com/GeeScot/donation-analytics-core/internal/usecases/analyzing"
	"github.com/sirupsen/logrus"
)

// Campaigner drives a campaign's cached state through
// absent -> donations-cached -> analytics-cached, with Reset returning any
// state to absent.
type Campaigner interface {
	GetCampaign(ctx context.Context, accountID, slug string) (*domain.CampaignResponse, error)
	CacheDonations(ctx context.Context, accountID, slug string) error
	CalculateStats(ctx context.Context, accountID, slug string) error
	Reset(ctx context.Context, accountID, slug string) error
	GetDonations(ctx context.Context, accountID, slug string) ([]domain.Donation, error)
	GetAnalytics(ctx context.Context, accountID, slug string) (*domain.CampaignAnalytics, error)
}

type Service struct {
	tiltifyService tiltify.Integrator
	donationRepo   repository.DonationRepository
	analyticsRepo  repository.AnalyticsRepository
	analyzer       analyzing.Analyzer

	// Serializes the check-then-act sequences per campaign key so concurrent
	// duplicate requests cannot both fetch or both compute.
	keyLocksMu sync.Mutex
	keyLocks   map[string]*sync.Mutex
}

func NewService(
	tiltifyService tiltify.Integrator,
	donationRepo repository.DonationRepository,
	analyticsRepo repository.AnalyticsRepository,
	analyzer analyzing.Analyzer,
) Campaigner {
	return &Service{
		tiltifyService: tiltifyService,
		donationRepo:   donationRepo,
		analyticsRepo:  analyticsRepo,
		analyzer:       analyzer,
		keyLocks:       make(map[string]*sync.Mutex),
	}
}

func (s *Service) lockKey(campaignKey string) *sync.Mutex {
	s.keyLocksMu.Lock()
	lock, ok := s.keyLocks[campaignKey]
	if !ok {
		lock = &sync.Mutex{}
		s.keyLocks[campaignKey] = lock
	}
	s.keyLocksMu.Unlock()

	lock.Lock()
	return lock
}

func campaignKey(accountID, slug string) string {
	return domain.CollectionKey("donations", accountID, slug)
}

// GetCampaign fetches live campaign metadata and reports whether the
// donation set is already cached locally. It never mutates state.
func (s *Service) GetCampaign(ctx context.Context, accountID, slug string) (*domain.CampaignResponse, error) {
	campaign, err := s.tiltifyService.GetCampaign(ctx, accountID, slug)
	if err != nil {
		return nil, err
	}

	exists, err := s.donationRepo.Exists(ctx, campaignKey(accountID, slug))
	if err != nil {
		return nil, err
	}

	return &domain.CampaignResponse{
		IsCached: exists,
		Campaign: campaign,
	}, nil
}

// CacheDonations fetches and persists the campaign's complete donation set.
// A second call for an already-cached campaign is a no-op; a failed fetch
// leaves no partial set behind.
func (s *Service) CacheDonations(ctx context.Context, accountID, slug string) error {
	key := campaignKey(accountID, slug)

	lock := s.lockKey(key)
	defer lock.Unlock()

	exists, err := s.donationRepo.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		logrus.WithField("campaign_key", key).Debug("campaigning: donations already cached")
		return nil
	}

	donations, err := s.tiltifyService.GetAllDonations(ctx, accountID, slug)
	if err != nil {
		return err
	}

	if err := s.donationRepo.InsertAll(ctx, key, donations); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_key":   key,
		"donation_count": len(donations),
	}).Info("campaigning: donation set cached")

	return nil
}

// CalculateStats runs the analytics engine over the cached donation set and
// stores the result. The aggregation runs at most once per cached set; an
// existing entry makes this a no-op.
func (s *Service) CalculateStats(ctx context.Context, accountID, slug string) error {
	key := campaignKey(accountID, slug)

	lock := s.lockKey(key)
	defer lock.Unlock()

	stored, err := s.analyticsRepo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if stored != nil {
		logrus.WithField("campaign_key", key).Debug("campaigning: analytics already calculated")
		return nil
	}

	exists, err := s.donationRepo.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDonationsNotCached
	}

	donations, err := s.donationRepo.ListAll(ctx, key)
	if err != nil {
		return err
	}

	analytics := s.analyzer.Analyze(donations)
	if analytics == nil {
		return ErrNoDonations
	}

	if err := s.analyticsRepo.Save(ctx, key, analytics); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_key":   key,
		"donation_count": analytics.Count,
	}).Info("campaigning: analytics calculated and stored")

	return nil
}

// Reset removes the cached donation set and its analytics unconditionally.
// Analytics go first so a stale result can never outlive its donation set.
func (s *Service) Reset(ctx context.Context, accountID, slug string) error {
	key := campaignKey(accountID, slug)

	lock := s.lockKey(key)
	defer lock.Unlock()

	if err := s.analyticsRepo.DeleteByKey(ctx, key); err != nil {
		return err
	}

	if err := s.donationRepo.Drop(ctx, key); err != nil {
		return err
	}

	logrus.WithField("campaign_key", key).Info("campaigning: campaign state reset")
	return nil
}

// GetDonations returns the cached donation set sorted by completion time.
func (s *Service) GetDonations(ctx context.Context, accountID, slug string) ([]domain.Donation, error) {
	key := campaignKey(accountID, slug)

	exists, err := s.donationRepo.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrDonationsNotCached
	}

	return s.donationRepo.ListAll(ctx, key)
}

// GetAnalytics returns the stored analytics for the campaign.
func (s *Service) GetAnalytics(ctx context.Context, accountID, slug string) (*domain.CampaignAnalytics, error) {
	entry, err := s.analyticsRepo.GetByKey(ctx, campaignKey(accountID, slug))
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrAnalyticsNotCached
	}

	return entry.Data, nil
}
