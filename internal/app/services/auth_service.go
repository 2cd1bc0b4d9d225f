package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/auth"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// AdminAccount is the single back-office login, taken from configuration.
type AdminAccount struct {
	Email        string
	PasswordHash string
}

// AuthService handles authentication operations
type AuthService struct {
	admin      AdminAccount
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(admin AdminAccount, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the administrator credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		s.logger.Warn().Msg("Login attempted but no administrator is configured")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(req.Email), s.admin.Email) ||
		!auth.CheckPassword(s.admin.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(s.admin.Email)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", s.admin.Email).Msg("Administrator logged in")
	return &dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresIn: expiresIn}, nil
}
