// internal/repository/postgres/client_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gymflow-service/internal/domain/client"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `
	id, name, last_name, document_number, email, phone_number,
	gender_id, blood_type_id, client_goal_id, registration_date,
	created_at, updated_at, deleted_at`

func scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.LastName, &c.DocumentNumber, &c.Email, &c.PhoneNumber,
		&c.GenderID, &c.BloodTypeID, &c.ClientGoalID, &c.RegistrationDate,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}
	return &c, nil
}

// FindByID retrieves a client by ID
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1 AND deleted_at IS NULL`, clientColumns)
	return scanClient(r.db.QueryRow(ctx, query, id))
}

// FindByDocumentNumber retrieves a client by document number
func (r *ClientRepository) FindByDocumentNumber(ctx context.Context, documentNumber string) (*client.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE document_number = $1 AND deleted_at IS NULL`, clientColumns)
	return scanClient(r.db.QueryRow(ctx, query, documentNumber))
}

// Create inserts a new client
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (
			name, last_name, document_number, email, phone_number,
			gender_id, blood_type_id, client_goal_id, registration_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		c.Name, c.LastName, c.DocumentNumber, c.Email, c.PhoneNumber,
		c.GenderID, c.BloodTypeID, c.ClientGoalID, c.RegistrationDate,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// Update updates a client's mutable fields
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = $1, last_name = $2, email = $3, phone_number = $4,
		    gender_id = $5, blood_type_id = $6, client_goal_id = $7, updated_at = $8
		WHERE id = $9 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(
		ctx, query,
		c.Name, c.LastName, c.Email, c.PhoneNumber,
		c.GenderID, c.BloodTypeID, c.ClientGoalID, time.Now(), c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// SoftDelete marks a client as deleted without removing its history
func (r *ClientRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE clients SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, sql.NullTime{Time: time.Now(), Valid: true}, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// List retrieves clients with optional search and pagination
func (r *ClientRepository) List(ctx context.Context, filters *client.ClientListFilters) ([]client.Client, int64, error) {
	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR last_name ILIKE $%d OR document_number ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM clients WHERE %s", whereClause)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	offset := (filters.Page - 1) * filters.PageSize

	query := fmt.Sprintf(`
		SELECT %s FROM clients
		WHERE %s
		ORDER BY last_name, name
		LIMIT $%d OFFSET $%d
	`, clientColumns, whereClause, argPos, argPos+1)
	args = append(args, filters.PageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []client.Client{}
	for rows.Next() {
		var c client.Client
		err := rows.Scan(
			&c.ID, &c.Name, &c.LastName, &c.DocumentNumber, &c.Email, &c.PhoneNumber,
			&c.GenderID, &c.BloodTypeID, &c.ClientGoalID, &c.RegistrationDate,
			&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, total, nil
}
