// internal/service/client/client_service.go
package client

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"gymflow-service/internal/domain/client"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Repository is the client persistence surface.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*client.Client, error)
	FindByDocumentNumber(ctx context.Context, documentNumber string) (*client.Client, error)
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filters *client.ClientListFilters) ([]client.Client, int64, error)
}

// SubscriptionReader loads a client's enrollment history.
type SubscriptionReader interface {
	FindByClientID(ctx context.Context, clientID int64) ([]subscription.Subscription, error)
}

// ObservationRepository is the client observation persistence surface.
type ObservationRepository interface {
	Create(ctx context.Context, o *client.ClientObservation) error
	FindByClientID(ctx context.Context, clientID int64) ([]client.ClientObservation, error)
}

type ClientService struct {
	repo             Repository
	subscriptionRepo SubscriptionReader
	observationRepo  ObservationRepository
	logger           *zap.Logger
	now              func() time.Time
}

func NewClientService(repo Repository, subscriptionRepo SubscriptionReader, observationRepo ObservationRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		repo:             repo,
		subscriptionRepo: subscriptionRepo,
		observationRepo:  observationRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Create registers a new gym client. Registration date is set to today.
func (s *ClientService) Create(ctx context.Context, req *client.CreateClientRequest) (*client.Client, error) {
	now := s.now().UTC()

	c := &client.Client{
		Name:             req.Name,
		LastName:         req.LastName,
		DocumentNumber:   req.DocumentNumber,
		Email:            req.Email,
		RegistrationDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if req.PhoneNumber != "" {
		c.PhoneNumber = sql.NullString{String: req.PhoneNumber, Valid: true}
	}
	if req.GenderID != nil {
		c.GenderID = sql.NullInt64{Int64: *req.GenderID, Valid: true}
	}
	if req.BloodTypeID != nil {
		c.BloodTypeID = sql.NullInt64{Int64: *req.BloodTypeID, Valid: true}
	}
	if req.ClientGoalID != nil {
		c.ClientGoalID = sql.NullInt64{Int64: *req.ClientGoalID, Valid: true}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("client created",
		zap.Int64("client_id", c.ID),
		zap.String("document_number", c.DocumentNumber))

	return c, nil
}

// FindByID retrieves a client by ID
func (s *ClientService) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByDocumentNumber retrieves a client by document number
func (s *ClientService) FindByDocumentNumber(ctx context.Context, documentNumber string) (*client.Client, error) {
	return s.repo.FindByDocumentNumber(ctx, documentNumber)
}

// Update applies the non-nil fields of the request to the client
func (s *ClientService) Update(ctx context.Context, id int64, req *client.UpdateClientRequest) (*client.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = sql.NullString{String: *req.PhoneNumber, Valid: *req.PhoneNumber != ""}
	}
	if req.GenderID != nil {
		c.GenderID = sql.NullInt64{Int64: *req.GenderID, Valid: true}
	}
	if req.BloodTypeID != nil {
		c.BloodTypeID = sql.NullInt64{Int64: *req.BloodTypeID, Valid: true}
	}
	if req.ClientGoalID != nil {
		c.ClientGoalID = sql.NullInt64{Int64: *req.ClientGoalID, Valid: true}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete soft-deletes a client. Subscription and attendance history stays on
// record.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("client deleted", zap.Int64("client_id", id))
	return nil
}

// List retrieves clients with optional search and pagination
func (s *ClientService) List(ctx context.Context, filters *client.ClientListFilters) (*client.ClientListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}

	clients, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &client.ClientListResponse{
		Clients:    clients,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filters.PageSize))),
	}, nil
}

// SubscriptionHistory returns a client's subscriptions, newest first
func (s *ClientService) SubscriptionHistory(ctx context.Context, clientID int64) ([]subscription.Subscription, error) {
	if _, err := s.repo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.subscriptionRepo.FindByClientID(ctx, clientID)
}

// AddObservation records a staff note on a client. The observation date
// defaults to today and may not be in the future.
func (s *ClientService) AddObservation(ctx context.Context, clientID int64, req *client.CreateObservationRequest) (*client.ClientObservation, error) {
	if _, err := s.repo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	date := today
	if req.Date != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid observation date", xerrors.ErrInvalidInput)
		}
		if date.After(today) {
			return nil, fmt.Errorf("%w: observation date cannot be in the future", xerrors.ErrInvalidInput)
		}
	}

	o := &client.ClientObservation{
		ClientID: clientID,
		Summary:  req.Summary,
		Date:     date,
	}
	if req.Comment != "" {
		o.Comment = sql.NullString{String: req.Comment, Valid: true}
	}

	if err := s.observationRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("observation recorded",
		zap.Int64("observation_id", o.ID),
		zap.Int64("client_id", clientID))

	return o, nil
}

// Observations returns a client's observations, newest first
func (s *ClientService) Observations(ctx context.Context, clientID int64) ([]client.ClientObservation, error) {
	if _, err := s.repo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.observationRepo.FindByClientID(ctx, clientID)
}
