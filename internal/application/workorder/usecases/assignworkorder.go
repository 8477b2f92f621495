package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/user"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type AssignWorkOrderCommand struct {
	WorkOrderID uint
	AssigneeID  uint
	AssignedBy  uint
}

type AssignWorkOrderResult struct {
	WorkOrderID uint   `json:"work_order_id"`
	AssigneeID  uint   `json:"assignee_id"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updated_at"`
}

type AssignWorkOrderUseCase struct {
	workOrderRepo   workorder.Repository
	userRepo        user.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewAssignWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	userRepo user.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignWorkOrderUseCase {
	return &AssignWorkOrderUseCase{
		workOrderRepo:   workOrderRepo,
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *AssignWorkOrderUseCase) Execute(
	ctx context.Context,
	cmd AssignWorkOrderCommand,
) (*AssignWorkOrderResult, error) {
	uc.logger.Infow("executing assign work order use case",
		"work_order_id", cmd.WorkOrderID,
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.AssignedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign work order command", "error", err)
		return nil, err
	}

	assignee, err := uc.userRepo.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		uc.logger.Errorw("failed to find assignee", "error", err, "assignee_id", cmd.AssigneeID)
		return nil, errors.NewNotFoundError("assignee not found")
	}

	if !assignee.CanPerformActions() {
		return nil, errors.NewValidationError("assignee is not active and cannot receive work orders")
	}

	wo, err := uc.workOrderRepo.GetByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to find work order", "error", err, "work_order_id", cmd.WorkOrderID)
		return nil, errors.NewNotFoundError("work order not found")
	}

	if err := wo.Assign(cmd.AssigneeID, cmd.AssignedBy, uc.now()); err != nil {
		uc.logger.Errorw("failed to assign work order", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workOrderRepo.Update(ctx, wo); err != nil {
		uc.logger.Errorw("failed to update work order", "error", err)
		if errors.IsConflict(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update work order")
	}

	uc.publishEvents(wo)

	uc.logger.Infow("work order assigned successfully",
		"work_order_id", wo.ID(),
		"assignee_id", cmd.AssigneeID)

	return &AssignWorkOrderResult{
		WorkOrderID: wo.ID(),
		AssigneeID:  *wo.AssigneeID(),
		Status:      wo.Status().String(),
		UpdatedAt:   wo.UpdatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *AssignWorkOrderUseCase) publishEvents(wo *workorder.WorkOrder) {
	for _, event := range wo.GetEvents() {
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}
	wo.ClearEvents()
}

func (uc *AssignWorkOrderUseCase) validateCommand(cmd AssignWorkOrderCommand) error {
	if cmd.WorkOrderID == 0 {
		return errors.NewValidationError("work order ID is required")
	}
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}
	if cmd.AssignedBy == 0 {
		return errors.NewValidationError("assigned by ID is required")
	}
	return nil
}
