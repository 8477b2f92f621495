package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/user"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(
	ctx context.Context,
	query GetUserQuery,
) (*UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to find user", "error", err, "user_id", query.UserID)
		return nil, errors.NewNotFoundError("user not found")
	}

	return &UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		FullName:  u.FullName(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}, nil
}
