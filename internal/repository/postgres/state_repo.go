// internal/repository/postgres/state_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gymflow-service/internal/domain/state"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StateRepository struct {
	db *pgxpool.Pool
}

func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{db: db}
}

// FindByName retrieves a state by scope and name, ignoring case.
func (r *StateRepository) FindByName(ctx context.Context, scope, name string) (*state.State, error) {
	query := `
		SELECT id, scope, name, created_at, updated_at
		FROM states
		WHERE LOWER(scope) = LOWER($1) AND LOWER(name) = LOWER($2)
	`

	var s state.State
	err := r.db.QueryRow(ctx, query, scope, name).Scan(
		&s.ID, &s.Scope, &s.Name, &s.CreatedAt, &s.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find state: %w", err)
	}

	return &s, nil
}

// FindByID retrieves a state by ID
func (r *StateRepository) FindByID(ctx context.Context, id int64) (*state.State, error) {
	query := `SELECT id, scope, name, created_at, updated_at FROM states WHERE id = $1`

	var s state.State
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Scope, &s.Name, &s.CreatedAt, &s.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find state: %w", err)
	}

	return &s, nil
}

// List retrieves all states
func (r *StateRepository) List(ctx context.Context) ([]state.State, error) {
	query := `SELECT id, scope, name, created_at, updated_at FROM states ORDER BY scope, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	states := []state.State{}
	for rows.Next() {
		var s state.State
		if err := rows.Scan(&s.ID, &s.Scope, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, s)
	}

	return states, nil
}

// Create inserts a new state
func (r *StateRepository) Create(ctx context.Context, s *state.State) error {
	query := `
		INSERT INTO states (scope, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, s.Scope, s.Name).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create state: %w", err)
	}

	return nil
}
