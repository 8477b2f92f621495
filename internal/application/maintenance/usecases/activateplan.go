package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/maintenance"
	"mantis/internal/domain/shared/events"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ActivatePlanCommand struct {
	PlanID      uint
	ActivatedBy uint
}

type ActivatePlanResult struct {
	PlanID   uint `json:"plan_id"`
	IsActive bool `json:"is_active"`
}

type ActivatePlanUseCase struct {
	planRepo        maintenance.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewActivatePlanUseCase(
	planRepo maintenance.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ActivatePlanUseCase {
	return &ActivatePlanUseCase{
		planRepo:        planRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *ActivatePlanUseCase) Execute(
	ctx context.Context,
	cmd ActivatePlanCommand,
) (*ActivatePlanResult, error) {
	if cmd.PlanID == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to find plan", "error", err, "plan_id", cmd.PlanID)
		return nil, errors.NewNotFoundError("maintenance plan not found")
	}

	plan.Activate(uc.now())

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err)
		if errors.IsConflict(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update maintenance plan")
	}

	for _, event := range plan.GetEvents() {
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}
	plan.ClearEvents()

	uc.logger.Infow("maintenance plan activated", "plan_id", plan.ID())

	return &ActivatePlanResult{PlanID: plan.ID(), IsActive: plan.IsActive()}, nil
}
