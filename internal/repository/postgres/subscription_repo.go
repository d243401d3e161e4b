// internal/repository/postgres/subscription_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymflow-service/internal/domain/client"
	"gymflow-service/internal/domain/membership"
	"gymflow-service/internal/domain/state"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// FindByID retrieves a subscription with its client, membership and state
// relations populated.
func (r *SubscriptionRepository) FindByID(ctx context.Context, id int64) (*subscription.Subscription, error) {
	query := `
		SELECT s.id, s.start_date, s.client_id, s.membership_id, s.state_id,
		       s.created_at, s.updated_at,
		       st.id, st.scope, st.name, st.created_at, st.updated_at,
		       m.id, m.name, m.description, m.monthly_price, m.weekly_attendance_limit,
		       m.created_at, m.updated_at, m.deleted_at,
		       c.id, c.name, c.last_name, c.document_number, c.email, c.phone_number,
		       c.gender_id, c.blood_type_id, c.registration_date,
		       c.created_at, c.updated_at, c.deleted_at
		FROM subscriptions s
		JOIN states st ON st.id = s.state_id
		JOIN memberships m ON m.id = s.membership_id
		JOIN clients c ON c.id = s.client_id
		WHERE s.id = $1
	`

	var sub subscription.Subscription
	var st state.State
	var m membership.Membership
	var c client.Client

	err := r.db.QueryRow(ctx, query, id).Scan(
		&sub.ID, &sub.StartDate, &sub.ClientID, &sub.MembershipID, &sub.StateID,
		&sub.CreatedAt, &sub.UpdatedAt,
		&st.ID, &st.Scope, &st.Name, &st.CreatedAt, &st.UpdatedAt,
		&m.ID, &m.Name, &m.Description, &m.MonthlyPrice, &m.WeeklyAttendanceLimit,
		&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
		&c.ID, &c.Name, &c.LastName, &c.DocumentNumber, &c.Email, &c.PhoneNumber,
		&c.GenderID, &c.BloodTypeID, &c.RegistrationDate,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	sub.State = &st
	sub.Membership = &m
	sub.Client = &c

	return &sub, nil
}

// FindByClientID retrieves a client's full subscription history with state and
// membership populated, newest first (start_date, then id, both descending).
func (r *SubscriptionRepository) FindByClientID(ctx context.Context, clientID int64) ([]subscription.Subscription, error) {
	query := `
		SELECT s.id, s.start_date, s.client_id, s.membership_id, s.state_id,
		       s.created_at, s.updated_at,
		       st.id, st.scope, st.name, st.created_at, st.updated_at,
		       m.id, m.name, m.description, m.monthly_price, m.weekly_attendance_limit,
		       m.created_at, m.updated_at, m.deleted_at
		FROM subscriptions s
		JOIN states st ON st.id = s.state_id
		JOIN memberships m ON m.id = s.membership_id
		WHERE s.client_id = $1
		ORDER BY s.start_date DESC, s.id DESC
	`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []subscription.Subscription{}
	for rows.Next() {
		var sub subscription.Subscription
		var st state.State
		var m membership.Membership

		err := rows.Scan(
			&sub.ID, &sub.StartDate, &sub.ClientID, &sub.MembershipID, &sub.StateID,
			&sub.CreatedAt, &sub.UpdatedAt,
			&st.ID, &st.Scope, &st.Name, &st.CreatedAt, &st.UpdatedAt,
			&m.ID, &m.Name, &m.Description, &m.MonthlyPrice, &m.WeeklyAttendanceLimit,
			&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}

		sub.State = &st
		sub.Membership = &m
		subs = append(subs, sub)
	}

	return subs, nil
}

// Create inserts a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (start_date, client_id, membership_id, state_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		sub.StartDate, sub.ClientID, sub.MembershipID, sub.StateID,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// UpdateState moves a subscription to the given lifecycle state
func (r *SubscriptionRepository) UpdateState(ctx context.Context, id, stateID int64) error {
	query := `UPDATE subscriptions SET state_id = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, stateID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update subscription state: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
