package usecases

import "context"

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type AuthenticateUserExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*UserDTO, error)
}
