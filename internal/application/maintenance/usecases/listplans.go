package usecases

import (
	"context"

	"mantis/internal/application/maintenance/dto"
	"mantis/internal/domain/maintenance"
	vo "mantis/internal/domain/maintenance/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ListPlansQuery struct {
	TriggerType string
	AssetID     *uint
	IsActive    *bool
	Priority    string
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type ListPlansResult struct {
	Plans    []*dto.PlanDTO `json:"plans"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type ListPlansUseCase struct {
	planRepo maintenance.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(
	planRepo maintenance.Repository,
	logger logger.Interface,
) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(
	ctx context.Context,
	query ListPlansQuery,
) (*ListPlansResult, error) {
	filter := maintenance.Filter{
		AssetID:   query.AssetID,
		IsActive:  query.IsActive,
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.TriggerType != "" {
		triggerType := vo.TriggerType(query.TriggerType)
		if !triggerType.IsValid() {
			return nil, errors.NewValidationError("invalid trigger type filter")
		}
		filter.TriggerType = &triggerType
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	plans, total, err := uc.planRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, errors.NewInternalError("failed to list maintenance plans")
	}

	dtos := make([]*dto.PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, dto.FromPlan(plan))
	}

	return &ListPlansResult{
		Plans:    dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
