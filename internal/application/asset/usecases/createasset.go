package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CreateAssetCommand struct {
	Code           string
	Name           string
	Factory        string
	Workshop       string
	Line           string
	Station        string
	Vendor         string
	Model          string
	SerialNumber   string
	Specification  string
	Criticality    string
	CommissionedOn *time.Time
	CreatedBy      uint
}

type CreateAssetResult struct {
	AssetID   uint   `json:"asset_id"`
	Code      string `json:"code"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type CreateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateAssetUseCase(
	assetRepo asset.Repository,
	logger logger.Interface,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *CreateAssetUseCase) Execute(
	ctx context.Context,
	cmd CreateAssetCommand,
) (*CreateAssetResult, error) {
	uc.logger.Infow("executing create asset use case", "code", cmd.Code)

	if existing, err := uc.assetRepo.GetByCode(ctx, cmd.Code); err == nil && existing != nil {
		return nil, errors.NewConflictError("asset code already exists")
	}

	location := asset.Location{
		Factory:  cmd.Factory,
		Workshop: cmd.Workshop,
		Line:     cmd.Line,
		Station:  cmd.Station,
	}

	a, err := asset.NewAsset(cmd.Code, cmd.Name, location, cmd.CreatedBy, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	a.SetDetails(cmd.Vendor, cmd.Model, cmd.SerialNumber, cmd.Specification, cmd.Criticality, cmd.CommissionedOn)

	if err := uc.assetRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to save asset", "error", err)
		return nil, errors.NewInternalError("failed to save asset")
	}

	uc.logger.Infow("asset created successfully", "asset_id", a.ID(), "code", a.Code())

	return &CreateAssetResult{
		AssetID:   a.ID(),
		Code:      a.Code(),
		Status:    a.Status().String(),
		CreatedAt: a.CreatedAt().Format(time.RFC3339),
	}, nil
}
