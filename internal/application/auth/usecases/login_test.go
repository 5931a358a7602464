package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartincident/internal/domain/user"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

func activeUser(t *testing.T, id uint, email string, hash *string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Test User", email, authorization.RoleClient,
		user.StatusActive, hash, nil, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }

func TestLoginUseCase_Success(t *testing.T) {
	hash := "hashed:pw"
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return activeUser(t, 9, email, &hash), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, h string) error {
			require.Equal(t, "pw", password)
			require.Equal(t, hash, h)
			return nil
		},
	}
	tokens := &mockTokenIssuer{
		GenerateFunc: func(userID uint) (string, error) {
			require.Equal(t, uint(9), userID)
			return "the-token", nil
		},
	}

	uc := NewLoginUseCase(repo, hasher, tokens, logger.NewLogger())
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "a@b.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, uint(9), result.UserID)
	assert.Equal(t, "client", result.Role)
	assert.Equal(t, "the-token", result.Token)
}

func TestLoginUseCase_GenericUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		repo *mockUserRepository
	}{
		{
			name: "unknown email",
			repo: &mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return nil, nil
				},
			},
		},
		{
			name: "pending first login without password hash",
			repo: &mockUserRepository{
				FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return activeUser(t, 9, email, nil), nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginUseCase(tt.repo, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
			_, err := uc.Execute(context.Background(), LoginCommand{Email: "a@b.com", Password: "pw"})

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
			assert.Equal(t, "invalid email or password", appErr.Message)
		})
	}
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	hash := "hashed:pw"
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return activeUser(t, 9, email, &hash), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, h string) error {
			return assert.AnError
		},
	}

	uc := NewLoginUseCase(repo, hasher, &mockTokenIssuer{}, logger.NewLogger())
	_, err := uc.Execute(context.Background(), LoginCommand{Email: "a@b.com", Password: "nope"})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestLoginUseCase_InactiveAccount(t *testing.T) {
	hash := "hashed:pw"
	inactive, err := user.ReconstructUser(9, "Test User", "a@b.com", authorization.RoleClient,
		user.StatusInactive, &hash, nil, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)

	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return inactive, nil
		},
	}

	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())
	_, err = uc.Execute(context.Background(), LoginCommand{Email: "a@b.com", Password: "pw"})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestLoginUseCase_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: "pw"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "a@b.com", Password: ""})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
