// internal/repository/postgres/fee_collection_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gymflow-service/internal/domain/feecollection"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeeCollectionRepository struct {
	db *pgxpool.Pool
}

func NewFeeCollectionRepository(db *pgxpool.Pool) *FeeCollectionRepository {
	return &FeeCollectionRepository{db: db}
}

// Create inserts a new fee collection. historical_unit_amount is written once
// here and never updated afterwards.
func (r *FeeCollectionRepository) Create(ctx context.Context, fee *feecollection.FeeCollection) error {
	query := `
		INSERT INTO fee_collections (receipt, subscription_id, date, historical_unit_amount, paid_months)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		fee.Receipt, fee.SubscriptionID, fee.Date, fee.HistoricalUnitAmount, fee.PaidMonths,
	).Scan(&fee.ID, &fee.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create fee collection: %w", err)
	}

	return nil
}

// FindLatestBySubscriptionID retrieves the most recent fee collection for a
// subscription by payment date (ties broken by the later row).
func (r *FeeCollectionRepository) FindLatestBySubscriptionID(ctx context.Context, subscriptionID int64) (*feecollection.FeeCollection, error) {
	query := `
		SELECT id, receipt, subscription_id, date, historical_unit_amount, paid_months, created_at
		FROM fee_collections
		WHERE subscription_id = $1
		ORDER BY date DESC, id DESC
		LIMIT 1
	`

	var fee feecollection.FeeCollection
	err := r.db.QueryRow(ctx, query, subscriptionID).Scan(
		&fee.ID, &fee.Receipt, &fee.SubscriptionID, &fee.Date,
		&fee.HistoricalUnitAmount, &fee.PaidMonths, &fee.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest fee collection: %w", err)
	}

	return &fee, nil
}

// FindBySubscriptionID retrieves all fee collections for a subscription, newest first
func (r *FeeCollectionRepository) FindBySubscriptionID(ctx context.Context, subscriptionID int64) ([]feecollection.FeeCollection, error) {
	query := `
		SELECT id, receipt, subscription_id, date, historical_unit_amount, paid_months, created_at
		FROM fee_collections
		WHERE subscription_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fee collections: %w", err)
	}
	defer rows.Close()

	fees := []feecollection.FeeCollection{}
	for rows.Next() {
		var fee feecollection.FeeCollection
		err := rows.Scan(
			&fee.ID, &fee.Receipt, &fee.SubscriptionID, &fee.Date,
			&fee.HistoricalUnitAmount, &fee.PaidMonths, &fee.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee collection: %w", err)
		}
		fees = append(fees, fee)
	}

	return fees, nil
}
