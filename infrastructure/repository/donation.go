package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GeeScot/donation-analytics-core/infrastructure/database/postgres"
	"github.com/GeeScot/donation-analytics-core/internal/domain"
	"github.com/Masterminds/squirrel"
)

const donationsTable = "donations"

// Stay well below the Postgres bind-parameter limit (65535 / 7 columns).
const insertBatchSize = 1000

// DonationRepository persists one campaign's donation set under its
// collection key. A key's partition either does not exist or holds the
// complete set from a single fetch; InsertAll is the only mutation path.
type DonationRepository interface {
	Exists(ctx context.Context, campaignKey string) (bool, error)
	InsertAll(ctx context.Context, campaignKey string, donations []domain.Donation) error
	ListAll(ctx context.Context, campaignKey string) ([]domain.Donation, error)
	Drop(ctx context.Context, campaignKey string) error
}

type donationRepository struct {
	conn postgres.Conn
}

func NewDonationRepository(conn postgres.Conn) DonationRepository {
	return &donationRepository{
		conn: conn,
	}
}

// Exists reports whether the campaign's donation set has been fetched,
// independent of how many donations it holds.
func (r *donationRepository) Exists(ctx context.Context, campaignKey string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From("donation_sets").
		Where(squirrel.Eq{"campaign_key": campaignKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check donation set: %w", err)
	}

	return true, nil
}

// InsertAll writes the set marker and every donation in one transaction so a
// partial fetch can never look like a complete set.
func (r *donationRepository) InsertAll(ctx context.Context, campaignKey string, donations []domain.Donation) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		markerQuery, markerArgs, err := squirrel.
			Insert("donation_sets").
			Columns("campaign_key").
			Values(campaignKey).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, markerQuery, markerArgs...); err != nil {
			return fmt.Errorf("failed to insert donation set marker: %w", err)
		}

		for start := 0; start < len(donations); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(donations) {
				end = len(donations)
			}

			builder := squirrel.
				Insert(donationsTable).
				Columns("campaign_key", "external_id", "amount", "name", "comment", "completed_at", "updated_at", "sustained").
				PlaceholderFormat(squirrel.Dollar)

			for _, donation := range donations[start:end] {
				builder = builder.Values(
					campaignKey,
					donation.ExternalID,
					donation.Amount,
					donation.Name,
					donation.Comment,
					donation.CompletedAt,
					donation.UpdatedAt,
					donation.Sustained,
				)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to insert donations: %w", err)
			}
		}

		return nil
	})
}

// ListAll returns the campaign's donations sorted ascending by completion
// timestamp.
func (r *donationRepository) ListAll(ctx context.Context, campaignKey string) ([]domain.Donation, error) {
	query, args, err := squirrel.
		Select("external_id", "amount", "name", "comment", "completed_at", "updated_at", "sustained").
		From(donationsTable).
		Where(squirrel.Eq{"campaign_key": campaignKey}).
		OrderBy("completed_at ASC", "external_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query donations: %w", err)
	}
	defer rows.Close()

	donations := make([]domain.Donation, 0)
	for rows.Next() {
		var donation domain.Donation
		var comment sql.NullString

		err := rows.Scan(
			&donation.ExternalID,
			&donation.Amount,
			&donation.Name,
			&comment,
			&donation.CompletedAt,
			&donation.UpdatedAt,
			&donation.Sustained,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}

		donation.Comment = comment.String
		donations = append(donations, donation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating donations: %w", err)
	}

	return donations, nil
}

// Drop removes the campaign's entire partition, marker included. Dropping an
// absent partition is a no-op.
func (r *donationRepository) Drop(ctx context.Context, campaignKey string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		donationsQuery, donationsArgs, err := squirrel.
			Delete(donationsTable).
			Where(squirrel.Eq{"campaign_key": campaignKey}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, donationsQuery, donationsArgs...); err != nil {
			return fmt.Errorf("failed to delete donations: %w", err)
		}

		markerQuery, markerArgs, err := squirrel.
			Delete("donation_sets").
			Where(squirrel.Eq{"campaign_key": campaignKey}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, markerQuery, markerArgs...); err != nil {
			return fmt.Errorf("failed to delete donation set marker: %w", err)
		}

		return nil
	})
}
