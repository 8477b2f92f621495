package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type GetAssetQuery struct {
	AssetID uint
	Code    string
}

type AssetDTO struct {
	ID             uint       `json:"id"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Factory        string     `json:"factory,omitempty"`
	Workshop       string     `json:"workshop,omitempty"`
	Line           string     `json:"line,omitempty"`
	Station        string     `json:"station,omitempty"`
	LocationPath   string     `json:"location_path,omitempty"`
	Vendor         string     `json:"vendor,omitempty"`
	Model          string     `json:"model,omitempty"`
	SerialNumber   string     `json:"serial_number,omitempty"`
	Specification  string     `json:"specification,omitempty"`
	Status         string     `json:"status"`
	Criticality    string     `json:"criticality,omitempty"`
	CommissionedOn *time.Time `json:"commissioned_on,omitempty"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func assetToDTO(a *asset.Asset) *AssetDTO {
	loc := a.Location()
	return &AssetDTO{
		ID:             a.ID(),
		Code:           a.Code(),
		Name:           a.Name(),
		Factory:        loc.Factory,
		Workshop:       loc.Workshop,
		Line:           loc.Line,
		Station:        loc.Station,
		LocationPath:   loc.Path(),
		Vendor:         a.Vendor(),
		Model:          a.Model(),
		SerialNumber:   a.SerialNumber(),
		Specification:  a.Specification(),
		Status:         a.Status().String(),
		Criticality:    a.Criticality(),
		CommissionedOn: a.CommissionedOn(),
		Version:        a.Version(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewGetAssetUseCase(
	assetRepo asset.Repository,
	logger logger.Interface,
) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *GetAssetUseCase) Execute(
	ctx context.Context,
	query GetAssetQuery,
) (*AssetDTO, error) {
	if query.AssetID == 0 && query.Code == "" {
		return nil, errors.NewValidationError("asset ID or code is required")
	}

	var (
		a   *asset.Asset
		err error
	)
	if query.AssetID != 0 {
		a, err = uc.assetRepo.GetByID(ctx, query.AssetID)
	} else {
		a, err = uc.assetRepo.GetByCode(ctx, query.Code)
	}
	if err != nil {
		uc.logger.Errorw("failed to find asset",
			"error", err,
			"asset_id", query.AssetID,
			"code", query.Code)
		return nil, errors.NewNotFoundError("asset not found")
	}

	return assetToDTO(a), nil
}
