// internal/repository/postgres/client_observation_repo.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gymflow-service/internal/domain/client"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientObservationRepository struct {
	db *pgxpool.Pool
}

func NewClientObservationRepository(db *pgxpool.Pool) *ClientObservationRepository {
	return &ClientObservationRepository{db: db}
}

// Create inserts a new observation for a client
func (r *ClientObservationRepository) Create(ctx context.Context, o *client.ClientObservation) error {
	query := `
		INSERT INTO client_observations (client_id, summary, comment, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		o.ClientID, o.Summary, o.Comment, o.Date,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}

	return nil
}

// FindByClientID retrieves a client's observations, newest first
func (r *ClientObservationRepository) FindByClientID(ctx context.Context, clientID int64) ([]client.ClientObservation, error) {
	query := `
		SELECT id, client_id, summary, comment, date, created_at, deleted_at
		FROM client_observations
		WHERE client_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()

	observations := []client.ClientObservation{}
	for rows.Next() {
		var o client.ClientObservation
		err := rows.Scan(&o.ID, &o.ClientID, &o.Summary, &o.Comment, &o.Date, &o.CreatedAt, &o.DeletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, o)
	}

	return observations, nil
}

// SoftDelete marks an observation as deleted without removing it from the
// note trail
func (r *ClientObservationRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE client_observations SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, sql.NullTime{Time: time.Now(), Valid: true}, id)
	if err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
