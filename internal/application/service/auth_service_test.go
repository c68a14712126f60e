package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/enum"
	"github.com/supamart/pos-api/pkg/apperror"
	"github.com/supamart/pos-api/pkg/utils"
)

func newTestJWTManager() *utils.JWTManager {
	return utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
}

func activeUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "0700000001",
		Password: hash,
		Role:     enum.UserRoleCashier,
		Status:   enum.UserStatusActive,
		Active:   true,
	}
}

func TestLogin(t *testing.T) {
	user := activeUser(t, "correct-pass")
	userRepo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(userRepo, newTestJWTManager())

	t.Run("valid credentials return user and tokens", func(t *testing.T) {
		got, tokens, err := svc.Login(context.Background(), user.Email, "correct-pass")

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), user.Email, "wrong-pass")
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected with the same error", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody@example.com", "correct-pass")
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		deactivated := activeUser(t, "correct-pass")
		deactivated.Active = false
		repo := &fakeUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
				return deactivated, nil
			},
		}

		_, _, err := NewAuthService(repo, newTestJWTManager()).
			Login(context.Background(), deactivated.Email, "correct-pass")

		require.Error(t, err)
		assert.Equal(t, 403, apperror.GetAppError(err).Code)
	})
}

func TestRefreshToken(t *testing.T) {
	manager := newTestJWTManager()
	user := activeUser(t, "pass-word-1")
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(userRepo, manager)

	t.Run("valid refresh token issues new pair", func(t *testing.T) {
		refresh, err := manager.GenerateRefreshToken(user.ID)
		require.NoError(t, err)

		tokens, err := svc.RefreshToken(context.Background(), refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	})

	t.Run("token for unknown user is rejected", func(t *testing.T) {
		refresh, err := manager.GenerateRefreshToken(uuid.New())
		require.NoError(t, err)

		_, err = svc.RefreshToken(context.Background(), refresh)
		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	})
}

func TestChangePassword(t *testing.T) {
	user := activeUser(t, "old-password")
	var updated *entity.User
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
		updateFn: func(ctx context.Context, u *entity.User) error {
			updated = u
			return nil
		},
	}
	svc := NewAuthService(userRepo, newTestJWTManager())

	t.Run("wrong current password is rejected", func(t *testing.T) {
		_, err := svc.ChangePassword(context.Background(), user.ID, "wrong", "new-password-1")
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("correct current password updates hash and issues tokens", func(t *testing.T) {
		tokens, err := svc.ChangePassword(context.Background(), user.ID, "old-password", "new-password-1")

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		require.NotNil(t, updated)
		assert.True(t, utils.CheckPasswordHash("new-password-1", updated.Password))
	})
}
