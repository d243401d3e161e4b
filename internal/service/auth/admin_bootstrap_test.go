package auth

import (
	"context"
	"testing"

	"gymflow-service/internal/domain/auth"
	xerrors "gymflow-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, u *auth.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) AdminExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func newTestAuthService() (*AuthService, *mockUserRepo) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, nil, nil, nil, zap.NewNop())
	return svc, repo
}

func TestEnsureAdminExists_CreatesFirstAdmin(t *testing.T) {
	svc, repo := newTestAuthService()

	repo.On("AdminExists", mock.Anything).Return(false, nil)
	repo.On("FindByEmail", mock.Anything, "owner@gym.test").Return(nil, xerrors.ErrNotFound)

	var created *auth.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*auth.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*auth.User)
			created.ID = 1
		}).
		Return(nil)

	err := svc.EnsureAdminExists(context.Background(), "owner@gym.test", "s3cret", "Gym Owner")

	assert.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, created.Role)
	assert.Equal(t, "owner@gym.test", created.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))
	repo.AssertExpectations(t)
}

func TestEnsureAdminExists_SkipsWhenAdminPresent(t *testing.T) {
	svc, repo := newTestAuthService()

	repo.On("AdminExists", mock.Anything).Return(true, nil)

	err := svc.EnsureAdminExists(context.Background(), "owner@gym.test", "s3cret", "Gym Owner")

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureAdminExists_MissingCredentials(t *testing.T) {
	svc, repo := newTestAuthService()

	repo.On("AdminExists", mock.Anything).Return(false, nil)

	err := svc.EnsureAdminExists(context.Background(), "", "", "")

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureAdminExists_EmailTakenByNonAdmin(t *testing.T) {
	svc, repo := newTestAuthService()

	repo.On("AdminExists", mock.Anything).Return(false, nil)
	repo.On("FindByEmail", mock.Anything, "owner@gym.test").
		Return(&auth.User{ID: 7, Email: "owner@gym.test", Role: auth.RoleStaff}, nil)

	err := svc.EnsureAdminExists(context.Background(), "owner@gym.test", "s3cret", "Gym Owner")

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
