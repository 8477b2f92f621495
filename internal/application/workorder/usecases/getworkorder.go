package usecases

import (
	"context"

	"mantis/internal/application/workorder/dto"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetWorkOrderQuery struct {
	WorkOrderID uint
	Code        string
}

type GetWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewGetWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *GetWorkOrderUseCase {
	return &GetWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

// Execute looks up a work order by ID, or by code when no ID is given.
func (uc *GetWorkOrderUseCase) Execute(
	ctx context.Context,
	query GetWorkOrderQuery,
) (*dto.WorkOrderDTO, error) {
	if query.WorkOrderID == 0 && query.Code == "" {
		return nil, errors.NewValidationError("work order ID or code is required")
	}

	var (
		wo  *workorder.WorkOrder
		err error
	)
	if query.WorkOrderID != 0 {
		wo, err = uc.workOrderRepo.GetByID(ctx, query.WorkOrderID)
	} else {
		wo, err = uc.workOrderRepo.GetByCode(ctx, query.Code)
	}
	if err != nil {
		uc.logger.Errorw("failed to find work order",
			"error", err,
			"work_order_id", query.WorkOrderID,
			"code", query.Code)
		return nil, errors.NewNotFoundError("work order not found")
	}

	return dto.FromWorkOrder(wo), nil
}
