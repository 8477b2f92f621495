package usecases

import (
	"context"

	"mantis/internal/domain/asset"
	vo "mantis/internal/domain/asset/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ListAssetsQuery struct {
	Status    string
	Factory   string
	Workshop  string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListAssetsResult struct {
	Assets   []*AssetDTO `json:"assets"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(
	assetRepo asset.Repository,
	logger logger.Interface,
) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(
	ctx context.Context,
	query ListAssetsQuery,
) (*ListAssetsResult, error) {
	filter := asset.Filter{
		Factory:   query.Factory,
		Workshop:  query.Workshop,
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	assets, total, err := uc.assetRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, errors.NewInternalError("failed to list assets")
	}

	dtos := make([]*AssetDTO, 0, len(assets))
	for _, a := range assets {
		dtos = append(dtos, assetToDTO(a))
	}

	return &ListAssetsResult{
		Assets:   dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
