package client

import (
	"context"
	"testing"
	"time"

	"gymflow-service/internal/domain/client"
	"gymflow-service/internal/domain/subscription"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepo) FindByDocumentNumber(ctx context.Context, documentNumber string) (*client.Client, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepo) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClientRepo) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClientRepo) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockClientRepo) List(ctx context.Context, filters *client.ClientListFilters) ([]client.Client, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]client.Client), args.Get(1).(int64), args.Error(2)
}

type mockSubscriptionReader struct {
	mock.Mock
}

func (m *mockSubscriptionReader) FindByClientID(ctx context.Context, clientID int64) ([]subscription.Subscription, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.Subscription), args.Error(1)
}

type mockObservationRepo struct {
	mock.Mock
}

func (m *mockObservationRepo) Create(ctx context.Context, o *client.ClientObservation) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockObservationRepo) FindByClientID(ctx context.Context, clientID int64) ([]client.ClientObservation, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.ClientObservation), args.Error(1)
}

func newTestClientService() (*ClientService, *mockClientRepo, *mockObservationRepo) {
	repo := new(mockClientRepo)
	subs := new(mockSubscriptionReader)
	observations := new(mockObservationRepo)
	svc := NewClientService(repo, subs, observations, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc, repo, observations
}

func TestCreate_WithGoal(t *testing.T) {
	svc, repo, _ := newTestClientService()

	goalID := int64(4)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*client.Client")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*client.Client).ID = 12
		}).
		Return(nil)

	result, err := svc.Create(context.Background(), &client.CreateClientRequest{
		Name:           "Ana",
		LastName:       "Rivas",
		DocumentNumber: "12345",
		Email:          "ana@example.com",
		ClientGoalID:   &goalID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), result.ID)
	assert.True(t, result.ClientGoalID.Valid)
	assert.Equal(t, int64(4), result.ClientGoalID.Int64)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), result.RegistrationDate)
	repo.AssertExpectations(t)
}

func TestAddObservation_DefaultsToToday(t *testing.T) {
	svc, repo, observations := newTestClientService()

	repo.On("FindByID", mock.Anything, int64(10)).Return(&client.Client{ID: 10}, nil)
	observations.On("Create", mock.Anything, mock.AnythingOfType("*client.ClientObservation")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*client.ClientObservation).ID = 31
		}).
		Return(nil)

	result, err := svc.AddObservation(context.Background(), 10, &client.CreateObservationRequest{
		Summary: "Knee injury, avoid squats",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(31), result.ID)
	assert.Equal(t, int64(10), result.ClientID)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), result.Date)
	assert.False(t, result.Comment.Valid)
	observations.AssertExpectations(t)
}

func TestAddObservation_FutureDateRejected(t *testing.T) {
	svc, repo, observations := newTestClientService()

	repo.On("FindByID", mock.Anything, int64(10)).Return(&client.Client{ID: 10}, nil)

	_, err := svc.AddObservation(context.Background(), 10, &client.CreateObservationRequest{
		Summary: "Follow-up",
		Date:    "2025-06-16",
	})

	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
	observations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddObservation_ExplicitPastDate(t *testing.T) {
	svc, repo, observations := newTestClientService()

	repo.On("FindByID", mock.Anything, int64(10)).Return(&client.Client{ID: 10}, nil)
	observations.On("Create", mock.Anything, mock.AnythingOfType("*client.ClientObservation")).Return(nil)

	result, err := svc.AddObservation(context.Background(), 10, &client.CreateObservationRequest{
		Summary: "Initial assessment",
		Comment: "Cleared for full training",
		Date:    "2025-06-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), result.Date)
	assert.True(t, result.Comment.Valid)
	assert.Equal(t, "Cleared for full training", result.Comment.String)
}

func TestAddObservation_UnknownClient(t *testing.T) {
	svc, repo, observations := newTestClientService()

	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, xerrors.ErrNotFound)

	_, err := svc.AddObservation(context.Background(), 99, &client.CreateObservationRequest{
		Summary: "Note",
	})

	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	observations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestObservations(t *testing.T) {
	svc, repo, observations := newTestClientService()

	repo.On("FindByID", mock.Anything, int64(10)).Return(&client.Client{ID: 10}, nil)
	observations.On("FindByClientID", mock.Anything, int64(10)).
		Return([]client.ClientObservation{{ID: 2}, {ID: 1}}, nil)

	result, err := svc.Observations(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}
