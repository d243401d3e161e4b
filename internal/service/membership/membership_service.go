// internal/service/membership/membership_service.go
package membership

import (
	"context"
	"database/sql"

	"gymflow-service/internal/domain/membership"

	"go.uber.org/zap"
)

// Repository is the membership plan persistence surface.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*membership.Membership, error)
	List(ctx context.Context) ([]membership.Membership, error)
	Create(ctx context.Context, m *membership.Membership) error
	Update(ctx context.Context, m *membership.Membership) error
	SoftDelete(ctx context.Context, id int64) error
}

type MembershipService struct {
	repo   Repository
	logger *zap.Logger
}

func NewMembershipService(repo Repository, logger *zap.Logger) *MembershipService {
	return &MembershipService{repo: repo, logger: logger}
}

// FindByID retrieves a membership plan
func (s *MembershipService) FindByID(ctx context.Context, id int64) (*membership.Membership, error) {
	return s.repo.FindByID(ctx, id)
}

// List retrieves all membership plans
func (s *MembershipService) List(ctx context.Context) ([]membership.Membership, error) {
	return s.repo.List(ctx)
}

// Create registers a new membership plan
func (s *MembershipService) Create(ctx context.Context, req *membership.CreateMembershipRequest) (*membership.Membership, error) {
	m := &membership.Membership{
		Name:                  req.Name,
		MonthlyPrice:          req.MonthlyPrice,
		WeeklyAttendanceLimit: req.WeeklyAttendanceLimit,
	}
	if req.Description != "" {
		m.Description = sql.NullString{String: req.Description, Valid: true}
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("membership created",
		zap.Int64("membership_id", m.ID),
		zap.String("name", m.Name),
		zap.Float64("monthly_price", m.MonthlyPrice))

	return m, nil
}

// Update applies the non-nil fields of the request to the plan. A price change
// only affects fee collections recorded afterwards.
func (s *MembershipService) Update(ctx context.Context, id int64, req *membership.UpdateMembershipRequest) (*membership.Membership, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = sql.NullString{String: *req.Description, Valid: *req.Description != ""}
	}
	if req.MonthlyPrice != nil {
		m.MonthlyPrice = *req.MonthlyPrice
	}
	if req.WeeklyAttendanceLimit != nil {
		m.WeeklyAttendanceLimit = *req.WeeklyAttendanceLimit
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Delete soft-deletes a membership plan. Existing subscriptions keep pointing
// at it.
func (s *MembershipService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("membership deleted", zap.Int64("membership_id", id))
	return nil
}
