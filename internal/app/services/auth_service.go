package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/app/models/dto"
	"github.com/deniz/campushub/internal/pkg/apperrors"
	"github.com/deniz/campushub/internal/pkg/auth"
)

// AdminUserStore is the repository surface used by AuthService.
type AdminUserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  AdminUserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo AdminUserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies admin credentials and issues an access token.
// Unknown emails and wrong passwords both map to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminUserNotFound) {
			s.logger.Warn().Str("email", req.Email).Msg("Login attempt for unknown admin user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", req.Email).Msg("Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
