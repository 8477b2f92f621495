package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/inspection"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetInspectionSummaryQuery struct {
	AssetID uint
	From    time.Time
	To      time.Time
}

type GetInspectionSummaryResult struct {
	AssetID   uint    `json:"asset_id"`
	Total     int64   `json:"total"`
	PassCount int64   `json:"pass_count"`
	FailCount int64   `json:"fail_count"`
	PassRate  float64 `json:"pass_rate"`
}

type GetInspectionSummaryUseCase struct {
	inspectionRepo inspection.Repository
	logger         logger.Interface
	now            func() time.Time
}

func NewGetInspectionSummaryUseCase(
	inspectionRepo inspection.Repository,
	logger logger.Interface,
) *GetInspectionSummaryUseCase {
	return &GetInspectionSummaryUseCase{
		inspectionRepo: inspectionRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *GetInspectionSummaryUseCase) Execute(
	ctx context.Context,
	query GetInspectionSummaryQuery,
) (*GetInspectionSummaryResult, error) {
	if query.AssetID == 0 {
		return nil, errors.NewValidationError("asset ID is required")
	}

	from, to := query.From, query.To
	if to.IsZero() {
		to = uc.now()
	}
	if from.IsZero() {
		// default window is the trailing 30 days
		from = to.AddDate(0, 0, -30)
	}
	if to.Before(from) {
		return nil, errors.NewValidationError("invalid summary window")
	}

	summary, err := uc.inspectionRepo.Summarize(ctx, query.AssetID, from, to)
	if err != nil {
		uc.logger.Errorw("failed to summarize inspections", "error", err, "asset_id", query.AssetID)
		return nil, errors.NewInternalError("failed to summarize inspections")
	}

	return &GetInspectionSummaryResult{
		AssetID:   summary.AssetID,
		Total:     summary.Total,
		PassCount: summary.PassCount,
		FailCount: summary.FailCount,
		PassRate:  summary.PassRate(),
	}, nil
}
