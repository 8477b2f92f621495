package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/user"
	"mantis/internal/shared/authorization"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	ListFunc             func(ctx context.Context, offset, limit int) ([]*user.User, int64, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (*TokenPair, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role authorization.UserRole) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func activeUser(t *testing.T, role authorization.UserRole) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(42, "jdoe", "jdoe@example.com", "J. Doe", "hashed:s3cret-pass", role, true, 1, now, now)
	require.NoError(t, err)
	return u
}

func TestAuthenticateUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return activeUser(t, authorization.RoleTechnician), nil
		},
	}
	uc := NewAuthenticateUserUseCase(repo, &mockPasswordHasher{}, &mockTokenIssuer{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), AuthenticateUserCommand{
		Username: "jdoe",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.UserID)
	assert.Equal(t, "technician", result.Role)
	assert.Equal(t, "access", result.Tokens.AccessToken)
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return activeUser(t, authorization.RoleTechnician), nil
		},
	}
	uc := NewAuthenticateUserUseCase(repo, &mockPasswordHasher{}, &mockTokenIssuer{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AuthenticateUserCommand{
		Username: "jdoe",
		Password: "wrong",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestAuthenticateUser_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return nil, fmt.Errorf("record not found")
		},
	}
	uc := NewAuthenticateUserUseCase(repo, &mockPasswordHasher{}, &mockTokenIssuer{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AuthenticateUserCommand{
		Username: "ghost",
		Password: "whatever1",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestAuthenticateUser_InactiveUser(t *testing.T) {
	repo := &mockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			now := time.Now()
			u, err := user.ReconstructUser(7, "retired", "", "", "hashed:s3cret-pass", authorization.RoleViewer, false, 1, now, now)
			require.NoError(t, err)
			return u, nil
		},
	}
	uc := NewAuthenticateUserUseCase(repo, &mockPasswordHasher{}, &mockTokenIssuer{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AuthenticateUserCommand{
		Username: "retired",
		Password: "s3cret-pass",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestRegisterUser_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return u.SetID(1)
		},
	}
	uc := NewRegisterUserUseCase(repo, &mockPasswordHasher{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username: "newtech",
		Password: "longenough",
		Role:     "technician",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.UserID)
	assert.Equal(t, "technician", result.Role)
	require.NotNil(t, saved)
	assert.Equal(t, "hashed:longenough", saved.PasswordHash())
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}
	uc := NewRegisterUserUseCase(repo, &mockPasswordHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username: "taken",
		Password: "longenough",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))
}

func TestRegisterUser_ShortPassword(t *testing.T) {
	uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username: "newtech",
		Password: "short",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
