// internal/service/feecollection/fee_service.go
package feecollection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymflow-service/internal/domain/feecollection"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/metrics"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Repository is the fee collection persistence surface.
type Repository interface {
	Create(ctx context.Context, fee *feecollection.FeeCollection) error
	FindLatestBySubscriptionID(ctx context.Context, subscriptionID int64) (*feecollection.FeeCollection, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID int64) ([]feecollection.FeeCollection, error)
}

// SubscriptionManager is the slice of the subscription service a payment
// needs: resolving the current subscription and reinstating it once paid.
type SubscriptionManager interface {
	GetCurrentSubscription(ctx context.Context, documentNumber string, clientID int64) (*subscription.Subscription, error)
	MakeSubscriptionActive(ctx context.Context, id int64) (*subscription.Subscription, error)
}

type FeeService struct {
	repo          Repository
	subscriptions SubscriptionManager
	checker       *PaymentChecker
	logger        *zap.Logger
	now           func() time.Time
}

func NewFeeService(repo Repository, subscriptions SubscriptionManager, checker *PaymentChecker, logger *zap.Logger) *FeeService {
	return &FeeService{
		repo:          repo,
		subscriptions: subscriptions,
		checker:       checker,
		logger:        logger,
		now:           time.Now,
	}
}

// Collect records a membership fee payment for the client with the given
// document number. The plan's monthly price is frozen into the receipt, and
// the subscription is reinstated to Active whatever state it was in. A client
// without a subscription is a domain outcome, not an error.
func (s *FeeService) Collect(ctx context.Context, req *feecollection.CollectRequest) (*feecollection.CollectResult, error) {
	if req.PaidMonths < 1 {
		return nil, fmt.Errorf("%w: paid months must be at least 1", xerrors.ErrInvalidInput)
	}

	sub, err := s.subscriptions.GetCurrentSubscription(ctx, req.DocumentNumber, 0)
	if errors.Is(err, xerrors.ErrNotFound) {
		return feecollection.Denied(feecollection.ReasonNoSubscription), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscription: %w", err)
	}
	if sub == nil {
		return feecollection.Denied(feecollection.ReasonNoSubscription), nil
	}

	if sub.Membership == nil {
		return nil, fmt.Errorf("subscription %d has no membership loaded", sub.ID)
	}

	now := s.now()
	date := truncateToDate(now)
	if req.Date != "" {
		date, err = time.ParseInLocation("2006-01-02", req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payment date", xerrors.ErrInvalidInput)
		}
		if date.After(truncateToDate(now)) {
			return nil, fmt.Errorf("%w: payment date cannot be in the future", xerrors.ErrInvalidInput)
		}
	}

	fee := &feecollection.FeeCollection{
		Receipt:              ulid.Make().String(),
		SubscriptionID:       sub.ID,
		Date:                 date,
		HistoricalUnitAmount: sub.Membership.MonthlyPrice,
		PaidMonths:           req.PaidMonths,
	}

	if err := s.repo.Create(ctx, fee); err != nil {
		return nil, err
	}

	if _, err := s.subscriptions.MakeSubscriptionActive(ctx, sub.ID); err != nil {
		return nil, fmt.Errorf("failed to reinstate subscription: %w", err)
	}

	metrics.FeeCollectionsRecorded.Inc()

	s.logger.Info("fee collection recorded",
		zap.String("receipt", fee.Receipt),
		zap.Int64("subscription_id", sub.ID),
		zap.Float64("unit_amount", fee.HistoricalUnitAmount),
		zap.Int("paid_months", fee.PaidMonths))

	return feecollection.Recorded(fee), nil
}

// History returns all fee collections recorded for a subscription, newest first
func (s *FeeService) History(ctx context.Context, subscriptionID int64) ([]feecollection.FeeCollection, error) {
	return s.repo.FindBySubscriptionID(ctx, subscriptionID)
}

// IsUpToDate reports whether the subscription's most recent payment still
// covers now. The due-date rule lives in the PaymentChecker; this is the same
// answer the subscription service gets when reconciling.
func (s *FeeService) IsUpToDate(ctx context.Context, subscriptionID int64) (bool, error) {
	return s.checker.IsUpToDate(ctx, subscriptionID)
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
