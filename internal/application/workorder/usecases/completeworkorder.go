package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CompleteWorkOrderCommand struct {
	WorkOrderID     uint
	CompletedBy     uint
	ActionsTaken    string
	RootCause       *string
	FailureCode     *string
	DowntimeMinutes *uint
	LaborHours      *float64
	PartsCost       *float64
	Notes           *string
}

type CompleteWorkOrderResult struct {
	WorkOrderID uint    `json:"work_order_id"`
	Status      string  `json:"status"`
	TotalCost   float64 `json:"total_cost"`
	CompletedAt string  `json:"completed_at"`
}

type CompleteWorkOrderUseCase struct {
	workOrderRepo   workorder.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewCompleteWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CompleteWorkOrderUseCase {
	return &CompleteWorkOrderUseCase{
		workOrderRepo:   workOrderRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *CompleteWorkOrderUseCase) Execute(
	ctx context.Context,
	cmd CompleteWorkOrderCommand,
) (*CompleteWorkOrderResult, error) {
	uc.logger.Infow("executing complete work order use case",
		"work_order_id", cmd.WorkOrderID,
		"completed_by", cmd.CompletedBy)

	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}
	if cmd.CompletedBy == 0 {
		return nil, errors.NewValidationError("completed by ID is required")
	}
	if cmd.LaborHours != nil && *cmd.LaborHours < 0 {
		return nil, errors.NewValidationError("labor hours cannot be negative")
	}
	if cmd.PartsCost != nil && *cmd.PartsCost < 0 {
		return nil, errors.NewValidationError("parts cost cannot be negative")
	}

	wo, err := uc.workOrderRepo.GetByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to find work order", "error", err, "work_order_id", cmd.WorkOrderID)
		return nil, errors.NewNotFoundError("work order not found")
	}

	details := workorder.CompletionDetails{
		ActionsTaken:    cmd.ActionsTaken,
		RootCause:       cmd.RootCause,
		FailureCode:     cmd.FailureCode,
		DowntimeMinutes: cmd.DowntimeMinutes,
		LaborHours:      cmd.LaborHours,
		PartsCost:       cmd.PartsCost,
		Notes:           cmd.Notes,
	}

	if err := wo.Complete(details, cmd.CompletedBy, uc.now()); err != nil {
		uc.logger.Errorw("failed to complete work order", "error", err)
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

	uc.logger.Infow("work order completed successfully",
		"work_order_id", wo.ID(),
		"total_cost", wo.TotalCost())

	return &CompleteWorkOrderResult{
		WorkOrderID: wo.ID(),
		Status:      wo.Status().String(),
		TotalCost:   wo.TotalCost(),
		CompletedAt: wo.CompletedAt().Format(time.RFC3339),
	}, nil
}
