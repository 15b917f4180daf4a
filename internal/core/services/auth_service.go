package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
)

type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates the single-owner login service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the owner's credentials and returns a signed JWT whose subject is the username.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if s.cfg.OwnerPasswordHash == "" {
		s.GetLogger(ctx).Warn("Login attempted but no owner password is configured")
		return "", fmt.Errorf("%w: login is not configured", apperrors.ErrUnauthorized)
	}

	userMatches := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.OwnerUsername)) == 1
	passwordMatches := utils.CheckPasswordHash(password, s.cfg.OwnerPasswordHash)
	if !userMatches || !passwordMatches {
		s.GetLogger(ctx).Warn("Invalid login attempt", slog.String("username", username))
		return "", fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(s.cfg.OwnerUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
