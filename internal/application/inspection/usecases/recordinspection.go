package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/inspection"
	vo "mantis/internal/domain/inspection/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type RecordInspectionCommand struct {
	AssetID       uint
	InspectorID   uint
	Item          string
	Result        string
	MeasuredValue *float64
	StandardRange string
	Notes         string
	InspectedAt   *time.Time
}

type RecordInspectionResult struct {
	RecordID uint   `json:"record_id"`
	AssetID  uint   `json:"asset_id"`
	Result   string `json:"result"`
}

type RecordInspectionUseCase struct {
	inspectionRepo inspection.Repository
	assetRepo      asset.Repository
	logger         logger.Interface
	now            func() time.Time
}

func NewRecordInspectionUseCase(
	inspectionRepo inspection.Repository,
	assetRepo asset.Repository,
	logger logger.Interface,
) *RecordInspectionUseCase {
	return &RecordInspectionUseCase{
		inspectionRepo: inspectionRepo,
		assetRepo:      assetRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *RecordInspectionUseCase) Execute(
	ctx context.Context,
	cmd RecordInspectionCommand,
) (*RecordInspectionResult, error) {
	uc.logger.Infow("executing record inspection use case",
		"asset_id", cmd.AssetID,
		"inspector_id", cmd.InspectorID,
		"result", cmd.Result)

	result := vo.Result(cmd.Result)
	if !result.IsValid() {
		return nil, errors.NewValidationError("inspection result must be ok or ng")
	}

	if _, err := uc.assetRepo.GetByID(ctx, cmd.AssetID); err != nil {
		uc.logger.Errorw("failed to find asset", "error", err, "asset_id", cmd.AssetID)
		return nil, errors.NewNotFoundError("asset not found")
	}

	now := uc.now()
	inspectedAt := now
	if cmd.InspectedAt != nil {
		inspectedAt = *cmd.InspectedAt
	}

	record, err := inspection.NewRecord(
		cmd.AssetID, cmd.InspectorID, cmd.Item, result,
		cmd.MeasuredValue, cmd.StandardRange, cmd.Notes,
		inspectedAt, now,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inspectionRepo.Save(ctx, record); err != nil {
		uc.logger.Errorw("failed to save inspection record", "error", err)
		return nil, errors.NewInternalError("failed to save inspection record")
	}

	if !result.IsPass() {
		uc.logger.Warnw("inspection failed",
			"asset_id", cmd.AssetID,
			"item", cmd.Item,
			"record_id", record.ID())
	}

	return &RecordInspectionResult{
		RecordID: record.ID(),
		AssetID:  record.AssetID(),
		Result:   record.Result().String(),
	}, nil
}
