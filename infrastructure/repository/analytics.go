package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/GeeScot/donation-analytics-core/infrastructure/database/postgres"
	"github.com/GeeScot/donation-analytics-core/internal/domain"
	"github.com/GeeScot/donation-analytics-core/pkg/utils"
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const analyticsTable = "campaign_analytics"

// AnalyticsRepository stores computed campaign analytics keyed by collection
// key. Save is insert-only; callers check for an existing entry first, and
// the unique key constraint backs that up.
type AnalyticsRepository interface {
	GetByKey(ctx context.Context, campaignKey string) (*domain.AnalyticsEntry, error)
	Save(ctx context.Context, campaignKey string, analytics *domain.CampaignAnalytics) error
	DeleteByKey(ctx context.Context, campaignKey string) error
}

type analyticsRepository struct {
	conn postgres.Conn
}

func NewAnalyticsRepository(conn postgres.Conn) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// GetByKey returns the stored analytics for the campaign, or nil when none
// have been computed.
func (r *analyticsRepository) GetByKey(ctx context.Context, campaignKey string) (*domain.AnalyticsEntry, error) {
	query, args, err := squirrel.
		Select("id", "campaign_key", "data", "created_at").
		From(analyticsTable).
		Where(squirrel.Eq{"campaign_key": campaignKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	entry := &domain.AnalyticsEntry{}
	var dataJSON []byte

	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&entry.ID, &entry.Key, &dataJSON, &entry.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan analytics entry: %w", err)
	}

	analytics := &domain.CampaignAnalytics{}
	if err := json.Unmarshal(dataJSON, analytics); err != nil {
		return nil, fmt.Errorf("failed to decode analytics payload: %w", err)
	}
	entry.Data = analytics

	return entry, nil
}

// Save inserts the analytics for the campaign. A second Save for the same
// key fails on the unique constraint rather than overwriting.
func (r *analyticsRepository) Save(ctx context.Context, campaignKey string, analytics *domain.CampaignAnalytics) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("failed to generate analytics id: %w", err)
	}

	dataJSON, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("failed to encode analytics payload: %w", err)
	}

	query, args, err := squirrel.
		Insert(analyticsTable).
		Columns("id", "campaign_key", "data").
		Values(id, campaignKey, dataJSON).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to insert analytics: %w", err)
	}

	return nil
}

// DeleteByKey removes the stored analytics for the campaign, if any.
func (r *analyticsRepository) DeleteByKey(ctx context.Context, campaignKey string) error {
	query, args, err := squirrel.
		Delete(analyticsTable).
		Where(squirrel.Eq{"campaign_key": campaignKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete analytics: %w", err)
	}

	return nil
}
