package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
	"github.com/lebinlenin2004/TravelSoftware/internal/platform/config"
	"github.com/lebinlenin2004/TravelSoftware/internal/utils"
)

// authService verifies credentials via the user service and issues JWTs.
type authService struct {
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login implements portssvc.AuthSvcFacade.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.AuthenticateUser(ctx, req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username))
		return nil, err
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
