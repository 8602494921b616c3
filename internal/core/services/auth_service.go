package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
	"github.com/gusau-lga/asset_management_app/internal/platform/config"
	"github.com/gusau-lga/asset_management_app/internal/utils"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserReader
	cfg      *config.Config
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and issues a signed token. Every failure path
// returns the same unauthorized error so callers cannot probe for usernames.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if user.DeletedAt != nil || user.Status != domain.UserActive {
		s.LogWarn(ctx, "login attempt on inactive account", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "login attempt with bad password", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "user logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.JWTExpiryDuration),
		User:      dto.ToUserResponse(user),
	}, nil
}
