package service

import (
	"context"
	"fmt"
	"strings"

	"seacoff/internal/auth"
	"seacoff/internal/config"
	"seacoff/internal/model"
	"seacoff/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService implements AuthService.
type authService struct {
	adminRepo repository.AdminRepository
	cfg       config.AuthConfig
	logger    zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(adminRepo repository.AdminRepository, cfg config.AuthConfig, logger zerolog.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// Login verifies admin credentials and issues a JWT. Unknown usernames and
// wrong passwords both map to the same error so the response does not reveal
// which part failed.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req == nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("failed to look up admin")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if admin == nil {
		s.logger.Warn().Str("username", req.Username).Msg("login for unknown admin")
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("username", req.Username).Msg("login with wrong password")
		return nil, model.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.cfg.JWTSecret, s.cfg.TokenTTL, admin.ID, admin.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("failed to sign token")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin logged in")

	return &model.LoginResponse{
		Message: "login successful",
		Token:   token,
		Admin:   *admin,
	}, nil
}
