package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/config"
	"github.com/spec-kit/complaint-service/internal/domain"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4,
	}
}

func seededAccount(t *testing.T, password string, active bool) *domain.Account {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return &domain.Account{
		ID:           uuid.NewString(),
		Email:        "agent@example.com",
		PasswordHash: hash,
		Name:         "Agent Smith",
		Role:         domain.RoleAgent,
		IsActive:     active,
	}
}

func TestLoginSuccess(t *testing.T) {
	accounts := &accountRepoMock{}
	account := seededAccount(t, "correct-horse", true)
	accounts.On("GetByEmail", mock.Anything, "agent@example.com").Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(nil)

	svc := NewAuthService(testAuthConfig(), accounts)

	got, token, expiresAt, err := svc.Login(context.Background(), "  Agent@Example.COM ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, domain.RoleAgent, claims.Role)

	accounts.AssertExpectations(t)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	const wantMessage = "invalid credentials"

	t.Run("unknown email", func(t *testing.T) {
		accounts := &accountRepoMock{}
		accounts.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, pgx.ErrNoRows)
		svc := NewAuthService(testAuthConfig(), accounts)

		_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
		require.Error(t, err)
		assert.Equal(t, wantMessage, apperrors.ToDomainError(err).Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		accounts := &accountRepoMock{}
		accounts.On("GetByEmail", mock.Anything, mock.Anything).Return(seededAccount(t, "correct-horse", true), nil)
		svc := NewAuthService(testAuthConfig(), accounts)

		_, _, _, err := svc.Login(context.Background(), "agent@example.com", "battery-staple")
		require.Error(t, err)
		assert.Equal(t, wantMessage, apperrors.ToDomainError(err).Message)
	})

	t.Run("inactive account", func(t *testing.T) {
		accounts := &accountRepoMock{}
		accounts.On("GetByEmail", mock.Anything, mock.Anything).Return(seededAccount(t, "correct-horse", false), nil)
		svc := NewAuthService(testAuthConfig(), accounts)

		_, _, _, err := svc.Login(context.Background(), "agent@example.com", "correct-horse")
		require.Error(t, err)
		assert.Equal(t, wantMessage, apperrors.ToDomainError(err).Message)
	})
}

func TestLoginSurvivesLastLoginUpdateFailure(t *testing.T) {
	accounts := &accountRepoMock{}
	account := seededAccount(t, "correct-horse", true)
	accounts.On("GetByEmail", mock.Anything, mock.Anything).Return(account, nil)
	accounts.On("UpdateLastLogin", mock.Anything, account.ID).Return(pgx.ErrNoRows)

	svc := NewAuthService(testAuthConfig(), accounts)

	_, token, _, err := svc.Login(context.Background(), "agent@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
