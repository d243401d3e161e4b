// internal/service/auth/admin_bootstrap.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"gymflow-service/internal/domain/auth"
	xerrors "gymflow-service/internal/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminExists creates the initial admin account if no admin is on
// record (called on startup). Registration is admin-gated, so without this a
// fresh deployment would have no way to create its first user.
func (s *AuthService) EnsureAdminExists(ctx context.Context, email, password, fullName string) error {
	exists, err := s.repo.AdminExists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check admin existence: %w", err)
	}

	if exists {
		s.logger.Info("admin account already exists, skipping creation")
		return nil
	}

	if email == "" || password == "" || fullName == "" {
		return fmt.Errorf("admin email, password, and name must be provided via environment variables")
	}

	// Double-check the email is free before claiming it for the admin role.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("email %s already exists but is not an admin account", email)
	} else if !errors.Is(err, xerrors.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u := &auth.User{
		Email:        email,
		FullName:     fullName,
		Role:         auth.RoleAdmin,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.logger.Info("admin account created",
		zap.Int64("user_id", u.ID),
		zap.String("email", u.Email),
		zap.String("full_name", u.FullName))

	return nil
}
