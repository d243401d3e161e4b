package feecollection

import (
	"context"
	"testing"
	"time"

	"gymflow-service/internal/domain/feecollection"
	"gymflow-service/internal/domain/membership"
	"gymflow-service/internal/domain/state"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockFeeRepo struct {
	mock.Mock
}

func (m *mockFeeRepo) Create(ctx context.Context, fee *feecollection.FeeCollection) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *mockFeeRepo) FindLatestBySubscriptionID(ctx context.Context, subscriptionID int64) (*feecollection.FeeCollection, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feecollection.FeeCollection), args.Error(1)
}

func (m *mockFeeRepo) FindBySubscriptionID(ctx context.Context, subscriptionID int64) ([]feecollection.FeeCollection, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feecollection.FeeCollection), args.Error(1)
}

type mockSubscriptionManager struct {
	mock.Mock
}

func (m *mockSubscriptionManager) GetCurrentSubscription(ctx context.Context, documentNumber string, clientID int64) (*subscription.Subscription, error) {
	args := m.Called(ctx, documentNumber, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionManager) MakeSubscriptionActive(ctx context.Context, id int64) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func suspendedSub() *subscription.Subscription {
	return &subscription.Subscription{
		ID:      5,
		StateID: 3,
		State:   &state.State{ID: 3, Scope: state.ScopeSubscription, Name: state.NameSuspended},
		Membership: &membership.Membership{
			ID:           2,
			MonthlyPrice: 75.50,
		},
	}
}

func newTestFeeService() (*FeeService, *mockFeeRepo, *mockSubscriptionManager) {
	repo := new(mockFeeRepo)
	subs := new(mockSubscriptionManager)
	checker := NewPaymentChecker(repo)
	checker.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	svc := NewFeeService(repo, subs, checker, zap.NewNop())
	svc.now = checker.now
	return svc, repo, subs
}

func TestCollect_FreezesPriceAndReinstates(t *testing.T) {
	svc, repo, subs := newTestFeeService()

	sub := suspendedSub()
	subs.On("GetCurrentSubscription", mock.Anything, "12345", int64(0)).Return(sub, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*feecollection.FeeCollection")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*feecollection.FeeCollection).ID = 42
		}).
		Return(nil)
	subs.On("MakeSubscriptionActive", mock.Anything, int64(5)).Return(sub, nil)

	result, err := svc.Collect(context.Background(), &feecollection.CollectRequest{
		DocumentNumber: "12345",
		PaidMonths:     2,
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(42), result.FeeCollection.ID)
	assert.Equal(t, 75.50, result.FeeCollection.HistoricalUnitAmount)
	assert.Equal(t, 2, result.FeeCollection.PaidMonths)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), result.FeeCollection.Date)
	assert.NotEmpty(t, result.FeeCollection.Receipt)
	subs.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCollect_NoSubscription(t *testing.T) {
	svc, repo, subs := newTestFeeService()

	subs.On("GetCurrentSubscription", mock.Anything, "99999", int64(0)).
		Return(nil, xerrors.ErrNotFound)

	result, err := svc.Collect(context.Background(), &feecollection.CollectRequest{
		DocumentNumber: "99999",
		PaidMonths:     1,
	})

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, feecollection.ReasonNoSubscription, result.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCollect_FutureDateRejected(t *testing.T) {
	svc, repo, subs := newTestFeeService()

	subs.On("GetCurrentSubscription", mock.Anything, "12345", int64(0)).
		Return(suspendedSub(), nil)

	_, err := svc.Collect(context.Background(), &feecollection.CollectRequest{
		DocumentNumber: "12345",
		PaidMonths:     1,
		Date:           "2025-06-16",
	})

	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCollect_ExplicitPastDate(t *testing.T) {
	svc, repo, subs := newTestFeeService()

	sub := suspendedSub()
	subs.On("GetCurrentSubscription", mock.Anything, "12345", int64(0)).Return(sub, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*feecollection.FeeCollection")).Return(nil)
	subs.On("MakeSubscriptionActive", mock.Anything, int64(5)).Return(sub, nil)

	result, err := svc.Collect(context.Background(), &feecollection.CollectRequest{
		DocumentNumber: "12345",
		PaidMonths:     1,
		Date:           "2025-06-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), result.FeeCollection.Date)
}

func TestCollect_InvalidPaidMonths(t *testing.T) {
	svc, _, subs := newTestFeeService()

	_, err := svc.Collect(context.Background(), &feecollection.CollectRequest{
		DocumentNumber: "12345",
		PaidMonths:     0,
	})

	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	subs.AssertNotCalled(t, "GetCurrentSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestIsUpToDate(t *testing.T) {
	tests := []struct {
		name   string
		latest *feecollection.FeeCollection
		err    error
		want   bool
	}{
		{
			name: "payment still covering",
			latest: &feecollection.FeeCollection{
				Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				PaidMonths: 1,
			},
			want: true,
		},
		{
			name: "payment lapsed",
			latest: &feecollection.FeeCollection{
				Date:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				PaidMonths: 1,
			},
			want: false,
		},
		{
			name: "no payments on record",
			err:  xerrors.ErrNotFound,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestFeeService()
			repo.On("FindLatestBySubscriptionID", mock.Anything, int64(5)).
				Return(tt.latest, tt.err)

			got, err := svc.IsUpToDate(context.Background(), 5)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaymentChecker_IsUpToDate(t *testing.T) {
	repo := new(mockFeeRepo)
	checker := NewPaymentChecker(repo)
	checker.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }

	repo.On("FindLatestBySubscriptionID", mock.Anything, int64(7)).
		Return(&feecollection.FeeCollection{
			Date:       time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
			PaidMonths: 1,
		}, nil)

	upToDate, err := checker.IsUpToDate(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, upToDate)
}
