package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/user"
	"mantis/internal/shared/authorization"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     string
}

type RegisterUserResult struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type RegisterUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
	now            func() time.Time
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *RegisterUserUseCase) Execute(
	ctx context.Context,
	cmd RegisterUserCommand,
) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "username", cmd.Username)

	if cmd.Username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, errors.NewInternalError("failed to check username")
	}
	if exists {
		return nil, errors.NewConflictError("username already exists")
	}

	role := authorization.ParseUserRole(cmd.Role)

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, cmd.FullName, hash, role, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to save user")
	}

	uc.logger.Infow("user registered successfully",
		"user_id", newUser.ID(),
		"username", newUser.Username(),
		"role", newUser.Role().String())

	return &RegisterUserResult{
		UserID:   newUser.ID(),
		Username: newUser.Username(),
		Role:     newUser.Role().String(),
	}, nil
}
