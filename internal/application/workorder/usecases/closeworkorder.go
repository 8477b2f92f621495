package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CloseWorkOrderCommand struct {
	WorkOrderID uint
	ClosedBy    uint
}

type CloseWorkOrderResult struct {
	WorkOrderID uint   `json:"work_order_id"`
	Status      string `json:"status"`
	ClosedAt    string `json:"closed_at"`
}

type CloseWorkOrderUseCase struct {
	workOrderRepo   workorder.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewCloseWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CloseWorkOrderUseCase {
	return &CloseWorkOrderUseCase{
		workOrderRepo:   workOrderRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *CloseWorkOrderUseCase) Execute(
	ctx context.Context,
	cmd CloseWorkOrderCommand,
) (*CloseWorkOrderResult, error) {
	uc.logger.Infow("executing close work order use case",
		"work_order_id", cmd.WorkOrderID,
		"closed_by", cmd.ClosedBy)

	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}
	if cmd.ClosedBy == 0 {
		return nil, errors.NewValidationError("closed by ID is required")
	}

	wo, err := uc.workOrderRepo.GetByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to find work order", "error", err, "work_order_id", cmd.WorkOrderID)
		return nil, errors.NewNotFoundError("work order not found")
	}

	if err := wo.CloseOut(cmd.ClosedBy, uc.now()); err != nil {
		uc.logger.Errorw("failed to close work order", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workOrderRepo.Update(ctx, wo); err != nil {
		uc.logger.Errorw("failed to update work order", "error", err)
		if errors.IsConflict(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update work order")
	}

	for _, event := range wo.GetEvents() {
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}
	wo.ClearEvents()

	uc.logger.Infow("work order closed successfully", "work_order_id", wo.ID())

	return &CloseWorkOrderResult{
		WorkOrderID: wo.ID(),
		Status:      wo.Status().String(),
		ClosedAt:    wo.ClosedAt().Format(time.RFC3339),
	}, nil
}
