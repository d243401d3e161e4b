// internal/repository/postgres/membership_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gymflow-service/internal/domain/membership"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MembershipRepository struct {
	db *pgxpool.Pool
}

func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// FindByID retrieves a membership plan by ID
func (r *MembershipRepository) FindByID(ctx context.Context, id int64) (*membership.Membership, error) {
	query := `
		SELECT id, name, description, monthly_price, weekly_attendance_limit,
		       created_at, updated_at, deleted_at
		FROM memberships
		WHERE id = $1 AND deleted_at IS NULL
	`

	var m membership.Membership
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Description, &m.MonthlyPrice, &m.WeeklyAttendanceLimit,
		&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}

	return &m, nil
}

// List retrieves all membership plans
func (r *MembershipRepository) List(ctx context.Context) ([]membership.Membership, error) {
	query := `
		SELECT id, name, description, monthly_price, weekly_attendance_limit,
		       created_at, updated_at, deleted_at
		FROM memberships
		WHERE deleted_at IS NULL
		ORDER BY monthly_price
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	memberships := []membership.Membership{}
	for rows.Next() {
		var m membership.Membership
		err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.MonthlyPrice, &m.WeeklyAttendanceLimit,
			&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, nil
}

// Create inserts a new membership plan
func (r *MembershipRepository) Create(ctx context.Context, m *membership.Membership) error {
	query := `
		INSERT INTO memberships (name, description, monthly_price, weekly_attendance_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		m.Name, m.Description, m.MonthlyPrice, m.WeeklyAttendanceLimit,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

// Update updates a membership plan. Changing monthly_price only affects future
// fee collections; recorded ones keep their frozen amount.
func (r *MembershipRepository) Update(ctx context.Context, m *membership.Membership) error {
	query := `
		UPDATE memberships
		SET name = $1, description = $2, monthly_price = $3,
		    weekly_attendance_limit = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(
		ctx, query,
		m.Name, m.Description, m.MonthlyPrice, m.WeeklyAttendanceLimit, time.Now(), m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// SoftDelete marks a membership plan as deleted
func (r *MembershipRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE memberships SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, sql.NullTime{Time: time.Now(), Valid: true}, id)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
