package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	vo "mantis/internal/domain/asset/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type UpdateAssetStatusCommand struct {
	AssetID   uint
	Status    string
	UpdatedBy uint
}

type UpdateAssetStatusResult struct {
	AssetID uint   `json:"asset_id"`
	Status  string `json:"status"`
}

type UpdateAssetStatusUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
	now       func() time.Time
}

func NewUpdateAssetStatusUseCase(
	assetRepo asset.Repository,
	logger logger.Interface,
) *UpdateAssetStatusUseCase {
	return &UpdateAssetStatusUseCase{
		assetRepo: assetRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *UpdateAssetStatusUseCase) Execute(
	ctx context.Context,
	cmd UpdateAssetStatusCommand,
) (*UpdateAssetStatusResult, error) {
	uc.logger.Infow("executing update asset status use case",
		"asset_id", cmd.AssetID,
		"status", cmd.Status)

	if cmd.AssetID == 0 {
		return nil, errors.NewValidationError("asset ID is required")
	}
	status := vo.Status(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid asset status")
	}

	a, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		uc.logger.Errorw("failed to find asset", "error", err, "asset_id", cmd.AssetID)
		return nil, errors.NewNotFoundError("asset not found")
	}

	if err := a.ChangeStatus(status, uc.now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update asset", "error", err)
		if errors.IsConflict(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update asset")
	}

	uc.logger.Infow("asset status updated", "asset_id", a.ID(), "status", a.Status().String())

	return &UpdateAssetStatusResult{AssetID: a.ID(), Status: a.Status().String()}, nil
}
