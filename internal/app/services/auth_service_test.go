package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/app/models/dto"
	"github.com/deniz/campushub/internal/pkg/apperrors"
	"github.com/deniz/campushub/internal/pkg/auth"
)

type fakeAdminStore struct {
	users map[string]*models.AdminUser
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, apperrors.ErrAdminUserNotFound
}

func newAuthFixture(t *testing.T) (*AuthService, *auth.JWTService) {
	t.Helper()

	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	store := &fakeAdminStore{users: map[string]*models.AdminUser{
		"admin@campushub.app": {ID: 1, Email: "admin@campushub.app", PasswordHash: hash},
	}}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushub.app",
	})
	return NewAuthService(store, jwtService, zerolog.Nop()), jwtService
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@campushub.app",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin@campushub.app", claims.Email)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@campushub.app",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@campushub.app",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
