package usecases

import (
	"context"

	"mantis/internal/application/workorder/dto"
	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ListWorkOrdersQuery struct {
	Status     string
	Type       string
	Priority   string
	AssetID    *uint
	AssigneeID *uint
	PlanID     *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListWorkOrdersResult struct {
	WorkOrders []*dto.WorkOrderDTO `json:"work_orders"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

type ListWorkOrdersUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewListWorkOrdersUseCase(
	workOrderRepo workorder.Repository,
	logger logger.Interface,
) *ListWorkOrdersUseCase {
	return &ListWorkOrdersUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *ListWorkOrdersUseCase) Execute(
	ctx context.Context,
	query ListWorkOrdersQuery,
) (*ListWorkOrdersResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	orders, total, err := uc.workOrderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list work orders", "error", err)
		return nil, errors.NewInternalError("failed to list work orders")
	}

	dtos := make([]*dto.WorkOrderDTO, 0, len(orders))
	for _, wo := range orders {
		dtos = append(dtos, dto.FromWorkOrder(wo))
	}

	return &ListWorkOrdersResult{
		WorkOrders: dtos,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (uc *ListWorkOrdersUseCase) buildFilter(query ListWorkOrdersQuery) (workorder.Filter, error) {
	filter := workorder.Filter{
		AssetID:    query.AssetID,
		AssigneeID: query.AssigneeID,
		PlanID:     query.PlanID,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return filter, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if query.Type != "" {
		woType := vo.Type(query.Type)
		if !woType.IsValid() {
			return filter, errors.NewValidationError("invalid type filter")
		}
		filter.Type = &woType
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return filter, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	return filter, nil
}
