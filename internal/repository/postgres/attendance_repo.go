// internal/repository/postgres/attendance_repo.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"gymflow-service/internal/domain/attendance"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AttendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// InsertIfUnderLimit records an attendance for the subscription if fewer than
// limit attendances fall inside [from, to). The count and the insert run in
// one transaction holding a row lock on the subscription, so two concurrent
// check-ins for the same subscription serialize and cannot both slip under the
// limit. Returns the recorded attendance and whether the insert happened.
func (r *AttendanceRepository) InsertIfUnderLimit(ctx context.Context, subscriptionID int64, at, from, to time.Time, limit int) (*attendance.Attendance, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialization point for concurrent check-ins on this subscription.
	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM subscriptions WHERE id = $1 FOR UPDATE`, subscriptionID).Scan(&lockedID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to lock subscription: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM attendances
		WHERE subscription_id = $1 AND date_time >= $2 AND date_time < $3
	`, subscriptionID, from, to).Scan(&count)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count attendances: %w", err)
	}

	if !attendance.UnderWeeklyLimit(count, limit) {
		return nil, false, nil
	}

	att := &attendance.Attendance{
		SubscriptionID: subscriptionID,
		DateTime:       at,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO attendances (subscription_id, date_time)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, att.SubscriptionID, att.DateTime).Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create attendance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return att, true, nil
}

// CountForSubscriptionBetween counts attendances inside [from, to)
func (r *AttendanceRepository) CountForSubscriptionBetween(ctx context.Context, subscriptionID int64, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM attendances
		WHERE subscription_id = $1 AND date_time >= $2 AND date_time < $3
	`

	var count int
	if err := r.db.QueryRow(ctx, query, subscriptionID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	return count, nil
}

// FindBySubscriptionID retrieves all attendances for a subscription, newest first
func (r *AttendanceRepository) FindBySubscriptionID(ctx context.Context, subscriptionID int64) ([]attendance.Attendance, error) {
	query := `
		SELECT id, subscription_id, date_time, created_at
		FROM attendances
		WHERE subscription_id = $1
		ORDER BY date_time DESC
	`

	rows, err := r.db.Query(ctx, query, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := []attendance.Attendance{}
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.SubscriptionID, &a.DateTime, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	return attendances, nil
}
