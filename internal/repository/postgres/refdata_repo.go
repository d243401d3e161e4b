// internal/repository/postgres/refdata_repo.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"gymflow-service/internal/domain/client"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RefDataRepository serves the small lookup tables backing client records.
type RefDataRepository struct {
	db *pgxpool.Pool
}

func NewRefDataRepository(db *pgxpool.Pool) *RefDataRepository {
	return &RefDataRepository{db: db}
}

// ListGenders retrieves all genders
func (r *RefDataRepository) ListGenders(ctx context.Context) ([]client.Gender, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list genders: %w", err)
	}
	defer rows.Close()

	genders := []client.Gender{}
	for rows.Next() {
		var g client.Gender
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan gender: %w", err)
		}
		genders = append(genders, g)
	}

	return genders, nil
}

// CreateGender inserts a new gender
func (r *RefDataRepository) CreateGender(ctx context.Context, g *client.Gender) error {
	query := `INSERT INTO genders (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, g.Name).Scan(&g.ID); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to create gender: %w", err)
	}

	return nil
}

// ListBloodTypes retrieves all blood types
func (r *RefDataRepository) ListBloodTypes(ctx context.Context) ([]client.BloodType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM blood_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blood types: %w", err)
	}
	defer rows.Close()

	bloodTypes := []client.BloodType{}
	for rows.Next() {
		var bt client.BloodType
		if err := rows.Scan(&bt.ID, &bt.Name); err != nil {
			return nil, fmt.Errorf("failed to scan blood type: %w", err)
		}
		bloodTypes = append(bloodTypes, bt)
	}

	return bloodTypes, nil
}

// CreateBloodType inserts a new blood type
func (r *RefDataRepository) CreateBloodType(ctx context.Context, bt *client.BloodType) error {
	query := `INSERT INTO blood_types (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, bt.Name).Scan(&bt.ID); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to create blood type: %w", err)
	}

	return nil
}

// ListClientGoals retrieves all client goals
func (r *RefDataRepository) ListClientGoals(ctx context.Context) ([]client.ClientGoal, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM client_goals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list client goals: %w", err)
	}
	defer rows.Close()

	goals := []client.ClientGoal{}
	for rows.Next() {
		var g client.ClientGoal
		if err := rows.Scan(&g.ID, &g.Name, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan client goal: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, nil
}

// CreateClientGoal inserts a new client goal
func (r *RefDataRepository) CreateClientGoal(ctx context.Context, g *client.ClientGoal) error {
	query := `INSERT INTO client_goals (name, description) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRow(ctx, query, g.Name, g.Description).Scan(&g.ID); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to create client goal: %w", err)
	}

	return nil
}
