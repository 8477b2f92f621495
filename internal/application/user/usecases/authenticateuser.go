package usecases

import (
	"context"

	"mantis/internal/domain/user"
	"mantis/internal/shared/authorization"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

// TokenPair carries the issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// TokenIssuer issues signed token pairs for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
}

type AuthenticateUserCommand struct {
	Username string
	Password string
}

type AuthenticateUserResult struct {
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Tokens   TokenPair `json:"tokens"`
}

type AuthenticateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewAuthenticateUserUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (uc *AuthenticateUserUseCase) Execute(
	ctx context.Context,
	cmd AuthenticateUserCommand,
) (*AuthenticateUserResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Warnw("authentication failed: user not found", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !u.IsActive() {
		uc.logger.Warnw("authentication rejected for inactive user", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if err := uc.passwordHasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("authentication failed: bad password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	tokens, err := uc.tokenIssuer.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user authenticated", "user_id", u.ID(), "role", u.Role().String())

	return &AuthenticateUserResult{
		UserID:   u.ID(),
		Username: u.Username(),
		Role:     u.Role().String(),
		Tokens:   *tokens,
	}, nil
}
