package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetWorkOrderStatsQuery struct{}

type GetWorkOrderStatsResult struct {
	Total      int64            `json:"total"`
	Open       int64            `json:"open"`
	InProgress int64            `json:"in_progress"`
	Completed  int64            `json:"completed"`
	Overdue    int64            `json:"overdue"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByType     map[string]int64 `json:"by_type"`
	ByPriority map[string]int64 `json:"by_priority"`
}

type GetWorkOrderStatsUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
	now           func() time.Time
}

func NewGetWorkOrderStatsUseCase(
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *GetWorkOrderStatsUseCase {
	return &GetWorkOrderStatsUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (uc *GetWorkOrderStatsUseCase) Execute(
	ctx context.Context,
	_ GetWorkOrderStatsQuery,
) (*GetWorkOrderStatsResult, error) {
	byStatus, err := uc.workOrderRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count work orders by status", "error", err)
		return nil, errors.NewInternalError("failed to compute work order stats")
	}

	byType, err := uc.workOrderRepo.CountByType(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count work orders by type", "error", err)
		return nil, errors.NewInternalError("failed to compute work order stats")
	}

	byPriority, err := uc.workOrderRepo.CountByPriority(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count work orders by priority", "error", err)
		return nil, errors.NewInternalError("failed to compute work order stats")
	}

	overdue, err := uc.workOrderRepo.CountOverdue(ctx, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to count overdue work orders", "error", err)
		return nil, errors.NewInternalError("failed to compute work order stats")
	}

	result := &GetWorkOrderStatsResult{
		ByStatus:   byStatus,
		ByType:     byType,
		ByPriority: byPriority,
		Overdue:    overdue,
	}

	for _, count := range byStatus {
		result.Total += count
	}
	result.Open = byStatus[vo.StatusOpen.String()] + byStatus[vo.StatusAssigned.String()]
	result.InProgress = byStatus[vo.StatusInProgress.String()]
	result.Completed = byStatus[vo.StatusCompleted.String()] + byStatus[vo.StatusClosed.String()]

	return result, nil
}
