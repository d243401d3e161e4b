// internal/service/subscription/subscription_service.go
package subscription

import (
	"context"
	"fmt"
	"time"

	"gymflow-service/internal/domain/client"
	"gymflow-service/internal/domain/membership"
	"gymflow-service/internal/domain/state"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

// Repository is the subscription persistence surface.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*subscription.Subscription, error)
	FindByClientID(ctx context.Context, clientID int64) ([]subscription.Subscription, error)
	Create(ctx context.Context, sub *subscription.Subscription) error
	UpdateState(ctx context.Context, id, stateID int64) error
}

// ClientReader resolves clients by either identifier the API accepts.
type ClientReader interface {
	FindByID(ctx context.Context, id int64) (*client.Client, error)
	FindByDocumentNumber(ctx context.Context, documentNumber string) (*client.Client, error)
}

// MembershipReader looks up plans for enrollment and pricing.
type MembershipReader interface {
	FindByID(ctx context.Context, id int64) (*membership.Membership, error)
}

// StateProvider resolves the well-known subscription lifecycle states.
type StateProvider interface {
	FindActiveState(ctx context.Context) (*state.State, error)
	FindInactiveState(ctx context.Context) (*state.State, error)
	FindSuspendedState(ctx context.Context) (*state.State, error)
}

// PaymentStatusProvider reports whether a subscription's latest payment still
// covers the present moment. Implemented by the fee collection layer; declared
// here so the dependency points one way only.
type PaymentStatusProvider interface {
	IsUpToDate(ctx context.Context, subscriptionID int64) (bool, error)
}

type SubscriptionService struct {
	subscriptionRepo Repository
	clientRepo       ClientReader
	membershipRepo   MembershipReader
	states           StateProvider
	payments         PaymentStatusProvider
	logger           *zap.Logger
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo Repository,
	clientRepo ClientReader,
	membershipRepo MembershipReader,
	states StateProvider,
	payments PaymentStatusProvider,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		clientRepo:       clientRepo,
		membershipRepo:   membershipRepo,
		states:           states,
		payments:         payments,
		logger:           logger,
		now:              time.Now,
	}
}

// GetCurrentSubscription resolves a client by document number (preferred) or
// client ID and returns their newest subscription, reconciled against payment
// recency. With neither identifier it returns (nil, nil); a client with no
// subscriptions at all is a not-found.
func (s *SubscriptionService) GetCurrentSubscription(ctx context.Context, documentNumber string, clientID int64) (*subscription.Subscription, error) {
	var cli *client.Client
	var err error

	switch {
	case documentNumber != "":
		cli, err = s.clientRepo.FindByDocumentNumber(ctx, documentNumber)
	case clientID > 0:
		cli, err = s.clientRepo.FindByID(ctx, clientID)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	subs, err := s.subscriptionRepo.FindByClientID(ctx, cli.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	current := subscription.Newest(subs)
	if current == nil {
		return nil, xerrors.ErrNotFound
	}

	if err := s.Reconcile(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// FindByID retrieves a subscription with its relations, reconciled against
// payment recency.
func (s *SubscriptionService) FindByID(ctx context.Context, id int64) (*subscription.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Reconcile(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Reconcile suspends an Active subscription whose latest payment no longer
// covers now, persisting the change. Inactive and already-Suspended
// subscriptions are left alone: Inactive is an explicit administrative choice,
// and re-suspending is a redundant write.
func (s *SubscriptionService) Reconcile(ctx context.Context, sub *subscription.Subscription) error {
	if sub.State == nil || !sub.State.Is(state.NameActive) {
		return nil
	}

	upToDate, err := s.payments.IsUpToDate(ctx, sub.ID)
	if err != nil {
		return fmt.Errorf("failed to check payment status: %w", err)
	}
	if upToDate {
		return nil
	}

	suspended, err := s.states.FindSuspendedState(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve suspended state: %w", err)
	}

	if err := s.subscriptionRepo.UpdateState(ctx, sub.ID, suspended.ID); err != nil {
		return fmt.Errorf("failed to suspend subscription: %w", err)
	}

	sub.StateID = suspended.ID
	sub.State = suspended
	metrics.SubscriptionsSuspended.Inc()

	s.logger.Info("subscription suspended for stale payment",
		zap.Int64("subscription_id", sub.ID),
		zap.Int64("client_id", sub.ClientID))

	return nil
}

// Create enrolls a client into a membership plan. New subscriptions start
// Active.
func (s *SubscriptionService) Create(ctx context.Context, req *subscription.CreateSubscriptionRequest) (*subscription.Subscription, error) {
	cli, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}

	plan, err := s.membershipRepo.FindByID(ctx, req.MembershipID)
	if err != nil {
		return nil, fmt.Errorf("membership not found: %w", err)
	}

	startDate := truncateToDate(s.now())
	if req.StartDate != "" {
		startDate, err = time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date", xerrors.ErrInvalidInput)
		}
	}

	active, err := s.states.FindActiveState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active state: %w", err)
	}

	sub := &subscription.Subscription{
		StartDate:    startDate,
		ClientID:     cli.ID,
		MembershipID: plan.ID,
		StateID:      active.ID,
	}

	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	sub.State = active
	sub.Membership = plan
	sub.Client = cli

	s.logger.Info("subscription created",
		zap.Int64("subscription_id", sub.ID),
		zap.Int64("client_id", cli.ID),
		zap.Int64("membership_id", plan.ID))

	return sub, nil
}

// MakeClientSubscriptionInactive cancels a client's current subscription by
// moving it to Inactive.
func (s *SubscriptionService) MakeClientSubscriptionInactive(ctx context.Context, clientID int64) (*subscription.Subscription, error) {
	subs, err := s.subscriptionRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	current := subscription.Newest(subs)
	if current == nil {
		return nil, xerrors.ErrNotFound
	}

	return s.moveToState(ctx, current, s.states.FindInactiveState)
}

// MakeSubscriptionActive moves a subscription to Active regardless of its
// current state. Fee collection relies on this to reinstate suspended and
// cancelled subscriptions when a payment comes in.
func (s *SubscriptionService) MakeSubscriptionActive(ctx context.Context, id int64) (*subscription.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.moveToState(ctx, sub, s.states.FindActiveState)
}

// MakeSubscriptionInactive moves a subscription to Inactive
func (s *SubscriptionService) MakeSubscriptionInactive(ctx context.Context, id int64) (*subscription.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.moveToState(ctx, sub, s.states.FindInactiveState)
}

// MakeSubscriptionSuspended moves a subscription to Suspended
func (s *SubscriptionService) MakeSubscriptionSuspended(ctx context.Context, id int64) (*subscription.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.moveToState(ctx, sub, s.states.FindSuspendedState)
}

func (s *SubscriptionService) moveToState(ctx context.Context, sub *subscription.Subscription, resolve func(context.Context) (*state.State, error)) (*subscription.Subscription, error) {
	target, err := resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state: %w", err)
	}

	if sub.StateID != target.ID {
		if err := s.subscriptionRepo.UpdateState(ctx, sub.ID, target.ID); err != nil {
			return nil, err
		}
	}

	sub.StateID = target.ID
	sub.State = target

	s.logger.Info("subscription state changed",
		zap.Int64("subscription_id", sub.ID),
		zap.String("state", target.Name))

	return sub, nil
}

// IsActive reports whether the subscription is Active after reconciliation
func (s *SubscriptionService) IsActive(ctx context.Context, id int64) (bool, error) {
	sub, err := s.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return sub.State != nil && sub.State.Is(state.NameActive), nil
}

// GetAttendanceLimit returns the weekly attendance limit of the subscription's
// plan. Plain read, no reconciliation.
func (s *SubscriptionService) GetAttendanceLimit(ctx context.Context, id int64) (int, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if sub.Membership == nil {
		return 0, fmt.Errorf("subscription %d has no membership loaded", id)
	}
	return sub.Membership.WeeklyAttendanceLimit, nil
}

// GetCurrentUnitPrice returns the plan's present monthly price for the
// subscription. Fee collection freezes this value into each receipt.
func (s *SubscriptionService) GetCurrentUnitPrice(ctx context.Context, id int64) (float64, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if sub.Membership == nil {
		return 0, fmt.Errorf("subscription %d has no membership loaded", id)
	}
	return sub.Membership.MonthlyPrice, nil
}

// GetClientSubscriptions returns a client's full subscription history, newest
// first.
func (s *SubscriptionService) GetClientSubscriptions(ctx context.Context, clientID int64) ([]subscription.Subscription, error) {
	return s.subscriptionRepo.FindByClientID(ctx, clientID)
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
