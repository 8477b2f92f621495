package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/sparepart"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ListSparePartsQuery struct {
	Keyword      string
	BelowMinimum *bool
	Page         int
	PageSize     int
}

type SparePartDTO struct {
	ID            uint      `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Specification string    `json:"specification,omitempty"`
	Category      string    `json:"category,omitempty"`
	Unit          string    `json:"unit,omitempty"`
	Supplier      string    `json:"supplier,omitempty"`
	Quantity      float64   `json:"quantity"`
	SafetyStock   float64   `json:"safety_stock"`
	MinQuantity   float64   `json:"min_quantity"`
	MaxQuantity   float64   `json:"max_quantity"`
	UnitPrice     float64   `json:"unit_price"`
	Location      string    `json:"location,omitempty"`
	BelowMinimum  bool      `json:"below_minimum"`
	BelowSafety   bool      `json:"below_safety"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListSparePartsResult struct {
	Parts    []*SparePartDTO `json:"parts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

type ListSparePartsUseCase struct {
	partRepo sparepart.Repository
	logger   logger.Interface
}

func NewListSparePartsUseCase(
	partRepo sparepart.Repository,
	logger logger.Interface,
) *ListSparePartsUseCase {
	return &ListSparePartsUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

func (uc *ListSparePartsUseCase) Execute(
	ctx context.Context,
	query ListSparePartsQuery,
) (*ListSparePartsResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := sparepart.Filter{
		Keyword:      query.Keyword,
		BelowMinimum: query.BelowMinimum,
	}

	parts, total, err := uc.partRepo.List(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list spare parts", "error", err)
		return nil, errors.NewInternalError("failed to list spare parts")
	}

	dtos := make([]*SparePartDTO, 0, len(parts))
	for _, part := range parts {
		dtos = append(dtos, &SparePartDTO{
			ID:            part.ID(),
			Code:          part.Code(),
			Name:          part.Name(),
			Specification: part.Specification(),
			Category:      part.Category(),
			Unit:          part.Unit(),
			Supplier:      part.Supplier(),
			Quantity:      part.Quantity(),
			SafetyStock:   part.SafetyStock(),
			MinQuantity:   part.MinQuantity(),
			MaxQuantity:   part.MaxQuantity(),
			UnitPrice:     part.UnitPrice(),
			Location:      part.Location(),
			BelowMinimum:  part.IsBelowMinimum(),
			BelowSafety:   part.IsBelowSafetyStock(),
			UpdatedAt:     part.UpdatedAt(),
		})
	}

	return &ListSparePartsResult{
		Parts:    dtos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
