package usecases

import "context"

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*CreateAssetResult, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, query GetAssetQuery) (*AssetDTO, error)
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
}

type UpdateAssetStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetStatusCommand) (*UpdateAssetStatusResult, error)
}
