package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type StartWorkOrderCommand struct {
	WorkOrderID uint
	StartedBy   uint
}

type StartWorkOrderResult struct {
	WorkOrderID uint   `json:"work_order_id"`
	Status      string `json:"status"`
	ActualStart string `json:"actual_start"`
}

type StartWorkOrderUseCase struct {
	workOrderRepo   workorder.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewStartWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *StartWorkOrderUseCase {
	return &StartWorkOrderUseCase{
		workOrderRepo:   workOrderRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *StartWorkOrderUseCase) Execute(
	ctx context.Context,
	cmd StartWorkOrderCommand,
) (*StartWorkOrderResult, error) {
	uc.logger.Infow("executing start work order use case",
		"work_order_id", cmd.WorkOrderID,
		"started_by", cmd.StartedBy)

	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}
	if cmd.StartedBy == 0 {
		return nil, errors.NewValidationError("started by ID is required")
	}

	wo, err := uc.workOrderRepo.GetByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to find work order", "error", err, "work_order_id", cmd.WorkOrderID)
		return nil, errors.NewNotFoundError("work order not found")
	}

	if err := wo.Start(cmd.StartedBy, uc.now()); err != nil {
		uc.logger.Errorw("failed to start work order", "error", err)
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

	uc.logger.Infow("work order started successfully", "work_order_id", wo.ID())

	return &StartWorkOrderResult{
		WorkOrderID: wo.ID(),
		Status:      wo.Status().String(),
		ActualStart: wo.ActualStart().Format(time.RFC3339),
	}, nil
}
