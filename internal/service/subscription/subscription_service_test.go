package subscription

import (
	"context"
	"testing"
	"time"

	"gymflow-service/internal/domain/client"
	"gymflow-service/internal/domain/membership"
	"gymflow-service/internal/domain/state"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) FindByID(ctx context.Context, id int64) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) FindByClientID(ctx context.Context, clientID int64) ([]subscription.Subscription, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) UpdateState(ctx context.Context, id, stateID int64) error {
	args := m.Called(ctx, id, stateID)
	return args.Error(0)
}

type mockClientReader struct {
	mock.Mock
}

func (m *mockClientReader) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientReader) FindByDocumentNumber(ctx context.Context, documentNumber string) (*client.Client, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type mockMembershipReader struct {
	mock.Mock
}

func (m *mockMembershipReader) FindByID(ctx context.Context, id int64) (*membership.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

type mockStateProvider struct {
	mock.Mock
}

func (m *mockStateProvider) FindActiveState(ctx context.Context) (*state.State, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*state.State), args.Error(1)
}

func (m *mockStateProvider) FindInactiveState(ctx context.Context) (*state.State, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*state.State), args.Error(1)
}

func (m *mockStateProvider) FindSuspendedState(ctx context.Context) (*state.State, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*state.State), args.Error(1)
}

type mockPaymentStatus struct {
	mock.Mock
}

func (m *mockPaymentStatus) IsUpToDate(ctx context.Context, subscriptionID int64) (bool, error) {
	args := m.Called(ctx, subscriptionID)
	return args.Bool(0), args.Error(1)
}

var (
	activeState    = &state.State{ID: 1, Scope: state.ScopeSubscription, Name: state.NameActive}
	inactiveState  = &state.State{ID: 2, Scope: state.ScopeSubscription, Name: state.NameInactive}
	suspendedState = &state.State{ID: 3, Scope: state.ScopeSubscription, Name: state.NameSuspended}
)

func newTestService() (*SubscriptionService, *mockSubscriptionRepo, *mockClientReader, *mockMembershipReader, *mockStateProvider, *mockPaymentStatus) {
	subRepo := new(mockSubscriptionRepo)
	clientRepo := new(mockClientReader)
	membershipRepo := new(mockMembershipReader)
	states := new(mockStateProvider)
	payments := new(mockPaymentStatus)

	svc := NewSubscriptionService(subRepo, clientRepo, membershipRepo, states, payments, zap.NewNop())
	return svc, subRepo, clientRepo, membershipRepo, states, payments
}

func TestGetCurrentSubscription_NoIdentifiers(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	sub, err := svc.GetCurrentSubscription(context.Background(), "", 0)

	assert.NoError(t, err)
	assert.Nil(t, sub)
}

func TestGetCurrentSubscription_NoSubscriptions(t *testing.T) {
	svc, subRepo, clientRepo, _, _, _ := newTestService()

	clientRepo.On("FindByDocumentNumber", mock.Anything, "12345").
		Return(&client.Client{ID: 10, DocumentNumber: "12345"}, nil)
	subRepo.On("FindByClientID", mock.Anything, int64(10)).
		Return([]subscription.Subscription{}, nil)

	sub, err := svc.GetCurrentSubscription(context.Background(), "12345", 0)

	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Nil(t, sub)
}

func TestGetCurrentSubscription_PicksNewestWithTieBreak(t *testing.T) {
	svc, subRepo, clientRepo, _, _, payments := newTestService()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	subs := []subscription.Subscription{
		{ID: 3, StartDate: day, StateID: activeState.ID, State: activeState},
		{ID: 7, StartDate: day, StateID: activeState.ID, State: activeState},
		{ID: 1, StartDate: day.AddDate(0, -2, 0), StateID: inactiveState.ID, State: inactiveState},
	}

	clientRepo.On("FindByID", mock.Anything, int64(10)).
		Return(&client.Client{ID: 10}, nil)
	subRepo.On("FindByClientID", mock.Anything, int64(10)).Return(subs, nil)
	payments.On("IsUpToDate", mock.Anything, int64(7)).Return(true, nil)

	sub, err := svc.GetCurrentSubscription(context.Background(), "", 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), sub.ID)
	payments.AssertExpectations(t)
}

func TestGetCurrentSubscription_SuspendsStaleActive(t *testing.T) {
	svc, subRepo, clientRepo, _, states, payments := newTestService()

	subs := []subscription.Subscription{
		{ID: 5, StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), StateID: activeState.ID, State: activeState},
	}

	clientRepo.On("FindByDocumentNumber", mock.Anything, "12345").
		Return(&client.Client{ID: 10}, nil)
	subRepo.On("FindByClientID", mock.Anything, int64(10)).Return(subs, nil)
	payments.On("IsUpToDate", mock.Anything, int64(5)).Return(false, nil)
	states.On("FindSuspendedState", mock.Anything).Return(suspendedState, nil)
	subRepo.On("UpdateState", mock.Anything, int64(5), suspendedState.ID).Return(nil)

	sub, err := svc.GetCurrentSubscription(context.Background(), "12345", 0)

	assert.NoError(t, err)
	assert.Equal(t, suspendedState.ID, sub.StateID)
	assert.True(t, sub.State.Is(state.NameSuspended))
	subRepo.AssertExpectations(t)
}

func TestReconcile_LeavesInactiveAlone(t *testing.T) {
	svc, subRepo, _, _, _, payments := newTestService()

	sub := &subscription.Subscription{ID: 5, StateID: inactiveState.ID, State: inactiveState}

	err := svc.Reconcile(context.Background(), sub)

	assert.NoError(t, err)
	assert.Equal(t, inactiveState.ID, sub.StateID)
	payments.AssertNotCalled(t, "IsUpToDate", mock.Anything, mock.Anything)
	subRepo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_LeavesSuspendedAlone(t *testing.T) {
	svc, subRepo, _, _, _, payments := newTestService()

	sub := &subscription.Subscription{ID: 5, StateID: suspendedState.ID, State: suspendedState}

	err := svc.Reconcile(context.Background(), sub)

	assert.NoError(t, err)
	payments.AssertNotCalled(t, "IsUpToDate", mock.Anything, mock.Anything)
	subRepo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_KeepsPaidActive(t *testing.T) {
	svc, subRepo, _, _, _, payments := newTestService()

	sub := &subscription.Subscription{ID: 5, StateID: activeState.ID, State: activeState}
	payments.On("IsUpToDate", mock.Anything, int64(5)).Return(true, nil)

	err := svc.Reconcile(context.Background(), sub)

	assert.NoError(t, err)
	assert.Equal(t, activeState.ID, sub.StateID)
	subRepo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_StartsActive(t *testing.T) {
	svc, subRepo, clientRepo, membershipRepo, states, _ := newTestService()

	clientRepo.On("FindByID", mock.Anything, int64(10)).
		Return(&client.Client{ID: 10}, nil)
	membershipRepo.On("FindByID", mock.Anything, int64(2)).
		Return(&membership.Membership{ID: 2, MonthlyPrice: 50, WeeklyAttendanceLimit: 3}, nil)
	states.On("FindActiveState", mock.Anything).Return(activeState, nil)
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*subscription.Subscription).ID = 99
		}).
		Return(nil)

	sub, err := svc.Create(context.Background(), &subscription.CreateSubscriptionRequest{
		ClientID:     10,
		MembershipID: 2,
		StartDate:    "2025-04-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(99), sub.ID)
	assert.Equal(t, activeState.ID, sub.StateID)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), sub.StartDate)
	assert.True(t, sub.State.Is(state.NameActive))
}

func TestCreate_InvalidStartDate(t *testing.T) {
	svc, _, clientRepo, membershipRepo, _, _ := newTestService()

	clientRepo.On("FindByID", mock.Anything, int64(10)).
		Return(&client.Client{ID: 10}, nil)
	membershipRepo.On("FindByID", mock.Anything, int64(2)).
		Return(&membership.Membership{ID: 2}, nil)

	_, err := svc.Create(context.Background(), &subscription.CreateSubscriptionRequest{
		ClientID:     10,
		MembershipID: 2,
		StartDate:    "not-a-date",
	})

	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestMakeClientSubscriptionInactive(t *testing.T) {
	svc, subRepo, _, _, states, _ := newTestService()

	subs := []subscription.Subscription{
		{ID: 5, StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), StateID: activeState.ID, State: activeState},
	}

	subRepo.On("FindByClientID", mock.Anything, int64(10)).Return(subs, nil)
	states.On("FindInactiveState", mock.Anything).Return(inactiveState, nil)
	subRepo.On("UpdateState", mock.Anything, int64(5), inactiveState.ID).Return(nil)

	sub, err := svc.MakeClientSubscriptionInactive(context.Background(), 10)

	assert.NoError(t, err)
	assert.True(t, sub.State.Is(state.NameInactive))
	subRepo.AssertExpectations(t)
}

func TestMakeSubscriptionActive_SkipsRedundantWrite(t *testing.T) {
	svc, subRepo, _, _, states, _ := newTestService()

	subRepo.On("FindByID", mock.Anything, int64(5)).
		Return(&subscription.Subscription{ID: 5, StateID: activeState.ID, State: activeState}, nil)
	states.On("FindActiveState", mock.Anything).Return(activeState, nil)

	sub, err := svc.MakeSubscriptionActive(context.Background(), 5)

	assert.NoError(t, err)
	assert.True(t, sub.State.Is(state.NameActive))
	subRepo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything)
}

func TestIsActive(t *testing.T) {
	svc, subRepo, _, _, _, payments := newTestService()

	subRepo.On("FindByID", mock.Anything, int64(5)).
		Return(&subscription.Subscription{ID: 5, StateID: activeState.ID, State: activeState}, nil)
	payments.On("IsUpToDate", mock.Anything, int64(5)).Return(true, nil)

	active, err := svc.IsActive(context.Background(), 5)

	assert.NoError(t, err)
	assert.True(t, active)
}
