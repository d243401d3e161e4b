// internal/service/state/state_service.go
package state

import (
	"context"
	"fmt"

	"gymflow-service/internal/domain/state"

	"go.uber.org/zap"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	FindByName(ctx context.Context, scope, name string) (*state.State, error)
	FindByID(ctx context.Context, id int64) (*state.State, error)
	List(ctx context.Context) ([]state.State, error)
	Create(ctx context.Context, s *state.State) error
}

type StateService struct {
	repo   Repository
	logger *zap.Logger
}

func NewStateService(repo Repository, logger *zap.Logger) *StateService {
	return &StateService{repo: repo, logger: logger}
}

// FindActiveState resolves the Active lifecycle state for subscriptions
func (s *StateService) FindActiveState(ctx context.Context) (*state.State, error) {
	return s.repo.FindByName(ctx, state.ScopeSubscription, state.NameActive)
}

// FindInactiveState resolves the Inactive lifecycle state for subscriptions
func (s *StateService) FindInactiveState(ctx context.Context) (*state.State, error) {
	return s.repo.FindByName(ctx, state.ScopeSubscription, state.NameInactive)
}

// FindSuspendedState resolves the Suspended lifecycle state for subscriptions
func (s *StateService) FindSuspendedState(ctx context.Context) (*state.State, error) {
	return s.repo.FindByName(ctx, state.ScopeSubscription, state.NameSuspended)
}

// FindByID retrieves a state by ID
func (s *StateService) FindByID(ctx context.Context, id int64) (*state.State, error) {
	return s.repo.FindByID(ctx, id)
}

// List retrieves all states across all scopes
func (s *StateService) List(ctx context.Context) ([]state.State, error) {
	return s.repo.List(ctx)
}

// Create registers a new state
func (s *StateService) Create(ctx context.Context, req *state.CreateStateRequest) (*state.State, error) {
	st := &state.State{
		Scope: req.Scope,
		Name:  req.Name,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to create state: %w", err)
	}

	s.logger.Info("state created",
		zap.Int64("state_id", st.ID),
		zap.String("scope", st.Scope),
		zap.String("name", st.Name))

	return st, nil
}
