package usecases

import (
	"context"

	"mantis/internal/application/maintenance/dto"
	"mantis/internal/domain/maintenance"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetPlanQuery struct {
	PlanID uint
	Code   string
}

type GetPlanUseCase struct {
	planRepo maintenance.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(
	planRepo maintenance.Repository,
	logger logger.Interface,
) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(
	ctx context.Context,
	query GetPlanQuery,
) (*dto.PlanDTO, error) {
	if query.PlanID == 0 && query.Code == "" {
		return nil, errors.NewValidationError("plan ID or code is required")
	}

	var (
		plan *maintenance.Plan
		err  error
	)
	if query.PlanID != 0 {
		plan, err = uc.planRepo.GetByID(ctx, query.PlanID)
	} else {
		plan, err = uc.planRepo.GetByCode(ctx, query.Code)
	}
	if err != nil {
		uc.logger.Errorw("failed to find plan",
			"error", err,
			"plan_id", query.PlanID,
			"code", query.Code)
		return nil, errors.NewNotFoundError("maintenance plan not found")
	}

	return dto.FromPlan(plan), nil
}
