// internal/service/auth/auth_service.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymflow-service/internal/domain/auth"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/jwt"
	"gymflow-service/internal/pkg/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Repository is the staff user persistence surface.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*auth.User, error)
	FindByID(ctx context.Context, id int64) (*auth.User, error)
	Create(ctx context.Context, u *auth.User) error
	AdminExists(ctx context.Context) (bool, error)
}

type AuthService struct {
	repo        Repository
	generator   *jwt.Generator
	rateLimiter *session.RateLimiter
	revocation  *session.RevocationList
	logger      *zap.Logger
}

func NewAuthService(
	repo Repository,
	generator *jwt.Generator,
	rateLimiter *session.RateLimiter,
	revocation *session.RevocationList,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		repo:        repo,
		generator:   generator,
		rateLimiter: rateLimiter,
		revocation:  revocation,
		logger:      logger,
	}
}

// Register creates a staff user. Role defaults to staff when omitted.
func (s *AuthService) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = auth.RoleStaff
	}

	u := &auth.User{
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", u.ID),
		zap.String("role", u.Role))

	return u, nil
}

// Login verifies credentials and issues an access token. Attempts are rate
// limited per ip/email pair; wrong email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, ip string, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	allowed, _, err := s.rateLimiter.CheckLoginAttempt(ctx, ip, req.Email)
	if err != nil {
		s.logger.Warn("rate limiter unavailable", zap.Error(err))
	} else if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, xerrors.ErrNotFound) {
		return nil, xerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, xerrors.ErrUnauthorized
	}

	token, _, err := s.generator.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, ip, req.Email); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	u.PasswordHash = ""

	return &auth.LoginResponse{Token: token, User: u}, nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, userID int64) (*auth.User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Logout revokes the presented token for the remainder of its lifetime
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.revocation.Revoke(ctx, jti, time.Until(expiresAt))
}
