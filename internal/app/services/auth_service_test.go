package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/auth"
)

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "sitehub"})
	svc := NewAuthService(AdminAccount{Email: "admin@gcms.edu.pk", PasswordHash: hash}, jwtService, zerolog.Nop())
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		tok, err := svc.Login(ctx, dto.LoginRequest{Email: "Admin@gcms.edu.pk", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", tok.TokenType)
		assert.Equal(t, int64(3600), tok.ExpiresIn)

		claims, err := jwtService.ValidateToken(tok.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@gcms.edu.pk", Password: "nope"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, dto.LoginRequest{Email: "someone@gcms.edu.pk", Password: "s3cret-pass"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("no administrator configured", func(t *testing.T) {
		bare := NewAuthService(AdminAccount{}, jwtService, zerolog.Nop())
		_, err := bare.Login(ctx, dto.LoginRequest{Email: "admin@gcms.edu.pk", Password: "x"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})
}
