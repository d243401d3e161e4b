// internal/service/refdata/refdata_service.go
package refdata

import (
	"context"
	"database/sql"

	"gymflow-service/internal/domain/client"

	"go.uber.org/zap"
)

// Repository serves the gender, blood type and client goal lookup tables.
type Repository interface {
	ListGenders(ctx context.Context) ([]client.Gender, error)
	CreateGender(ctx context.Context, g *client.Gender) error
	ListBloodTypes(ctx context.Context) ([]client.BloodType, error)
	CreateBloodType(ctx context.Context, bt *client.BloodType) error
	ListClientGoals(ctx context.Context) ([]client.ClientGoal, error)
	CreateClientGoal(ctx context.Context, g *client.ClientGoal) error
}

type RefDataService struct {
	repo   Repository
	logger *zap.Logger
}

func NewRefDataService(repo Repository, logger *zap.Logger) *RefDataService {
	return &RefDataService{repo: repo, logger: logger}
}

// ListGenders retrieves all genders
func (s *RefDataService) ListGenders(ctx context.Context) ([]client.Gender, error) {
	return s.repo.ListGenders(ctx)
}

// CreateGender registers a new gender
func (s *RefDataService) CreateGender(ctx context.Context, name string) (*client.Gender, error) {
	g := &client.Gender{Name: name}
	if err := s.repo.CreateGender(ctx, g); err != nil {
		return nil, err
	}
	s.logger.Info("gender created", zap.Int64("gender_id", g.ID), zap.String("name", g.Name))
	return g, nil
}

// ListBloodTypes retrieves all blood types
func (s *RefDataService) ListBloodTypes(ctx context.Context) ([]client.BloodType, error) {
	return s.repo.ListBloodTypes(ctx)
}

// CreateBloodType registers a new blood type
func (s *RefDataService) CreateBloodType(ctx context.Context, name string) (*client.BloodType, error) {
	bt := &client.BloodType{Name: name}
	if err := s.repo.CreateBloodType(ctx, bt); err != nil {
		return nil, err
	}
	s.logger.Info("blood type created", zap.Int64("blood_type_id", bt.ID), zap.String("name", bt.Name))
	return bt, nil
}

// ListClientGoals retrieves all client goals
func (s *RefDataService) ListClientGoals(ctx context.Context) ([]client.ClientGoal, error) {
	return s.repo.ListClientGoals(ctx)
}

// CreateClientGoal registers a new training goal clients can be tagged with
func (s *RefDataService) CreateClientGoal(ctx context.Context, req *client.CreateClientGoalRequest) (*client.ClientGoal, error) {
	g := &client.ClientGoal{Name: req.Name}
	if req.Description != "" {
		g.Description = sql.NullString{String: req.Description, Valid: true}
	}
	if err := s.repo.CreateClientGoal(ctx, g); err != nil {
		return nil, err
	}
	s.logger.Info("client goal created", zap.Int64("client_goal_id", g.ID), zap.String("name", g.Name))
	return g, nil
}
