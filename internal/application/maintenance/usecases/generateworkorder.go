package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/maintenance"
	mvo "mantis/internal/domain/maintenance/valueobjects"
	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/workorder"
	wovo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GenerateWorkOrderCommand struct {
	PlanID      uint
	GeneratedBy uint
	// CurrentCounter is recorded on the plan after generation so the
	// next counter evaluation measures the delta from this reading.
	CurrentCounter *float64
}

type GenerateWorkOrderResult struct {
	WorkOrderID uint   `json:"work_order_id"`
	Code        string `json:"code"`
	PlanID      uint   `json:"plan_id"`
	Status      string `json:"status"`
}

// GenerateWorkOrderUseCase turns a due maintenance plan into a PM work
// order. The plan's trigger bookkeeping is advanced only after the
// work order is durably saved, so a failed save leaves the plan due.
type GenerateWorkOrderUseCase struct {
	planRepo        maintenance.Repository
	workOrderRepo   workorder.Repository
	codeGenerator   workorder.CodeGenerator
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewGenerateWorkOrderUseCase(
	planRepo maintenance.Repository,
	workOrderRepo workorder.Repository,
	codeGenerator workorder.CodeGenerator,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *GenerateWorkOrderUseCase {
	return &GenerateWorkOrderUseCase{
		planRepo:        planRepo,
		workOrderRepo:   workOrderRepo,
		codeGenerator:   codeGenerator,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *GenerateWorkOrderUseCase) Execute(
	ctx context.Context,
	cmd GenerateWorkOrderCommand,
) (*GenerateWorkOrderResult, error) {
	uc.logger.Infow("executing generate work order use case",
		"plan_id", cmd.PlanID,
		"generated_by", cmd.GeneratedBy)

	if cmd.PlanID == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}
	if cmd.GeneratedBy == 0 {
		return nil, errors.NewValidationError("generated by ID is required")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to find plan", "error", err, "plan_id", cmd.PlanID)
		return nil, errors.NewNotFoundError("maintenance plan not found")
	}

	if !plan.IsActive() {
		return nil, errors.NewValidationError("cannot generate from an inactive plan")
	}

	now := uc.now()
	wo, err := uc.buildWorkOrder(plan, cmd.GeneratedBy, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	code, err := uc.codeGenerator.NextCode(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate work order code", "error", err)
		return nil, errors.NewInternalError("failed to generate work order code")
	}
	if err := wo.SetCode(code); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.workOrderRepo.Save(ctx, wo); err != nil {
		uc.logger.Errorw("failed to save generated work order", "error", err)
		return nil, errors.NewInternalError("failed to save work order")
	}

	// The work order exists durably; only now advance the plan.
	plan.MarkGenerated(now, cmd.CurrentCounter, now)
	if err := uc.planRepo.Update(ctx, plan); err != nil {
		// The work order stands; the plan will re-trigger and the
		// duplicate has to be resolved by the planner.
		uc.logger.Errorw("failed to advance plan after generation",
			"error", err,
			"plan_id", plan.ID(),
			"work_order_id", wo.ID())
		if errors.IsConflict(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("work order created but plan bookkeeping update failed")
	}

	if err := uc.eventDispatcher.Publish(workorder.NewGeneratedEvent(wo.ID(), wo.Code(), plan.ID(), cmd.GeneratedBy, now)); err != nil {
		uc.logger.Warnw("failed to dispatch event", "error", err)
	}

	uc.logger.Infow("work order generated from plan",
		"plan_id", plan.ID(),
		"work_order_id", wo.ID(),
		"code", wo.Code())

	return &GenerateWorkOrderResult{
		WorkOrderID: wo.ID(),
		Code:        wo.Code(),
		PlanID:      plan.ID(),
		Status:      wo.Status().String(),
	}, nil
}

func (uc *GenerateWorkOrderUseCase) buildWorkOrder(plan *maintenance.Plan, generatedBy uint, now time.Time) (*workorder.WorkOrder, error) {
	wo, err := workorder.NewWorkOrder(
		plan.AssetID(),
		wovo.TypePM,
		plan.Title(),
		plan.Description(),
		mapPlanPriority(plan.Priority()),
		generatedBy,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err := wo.SetPlanLink(plan.ID()); err != nil {
		return nil, err
	}

	template := plan.ChecklistTemplate()
	if len(template) > 0 {
		items := make([]workorder.ChecklistItem, 0, len(template))
		for _, item := range template {
			items = append(items, workorder.ChecklistItem{Item: item.Item, Standard: item.Standard})
		}
		wo.SetChecklist(items)
	}

	return wo, nil
}

func mapPlanPriority(p mvo.Priority) wovo.Priority {
	switch p {
	case mvo.PriorityLow:
		return wovo.PriorityLow
	case mvo.PriorityHigh:
		return wovo.PriorityHigh
	default:
		return wovo.PriorityMedium
	}
}
