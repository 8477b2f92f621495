package mappers

import (
	"mantis/internal/domain/asset"
	vo "mantis/internal/domain/asset/valueobjects"
	"mantis/internal/infrastructure/persistence/models"
)

// AssetMapper handles the conversion between Asset domain entities and persistence models.
type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	loc := a.Location()
	return &models.AssetModel{
		ID:             a.ID(),
		Code:           a.Code(),
		Name:           a.Name(),
		Factory:        loc.Factory,
		Workshop:       loc.Workshop,
		Line:           loc.Line,
		Station:        loc.Station,
		Vendor:         a.Vendor(),
		Model:          a.Model(),
		SerialNumber:   a.SerialNumber(),
		Specification:  a.Specification(),
		Status:         a.Status().String(),
		Criticality:    a.Criticality(),
		CommissionedOn: timePtrToMillis(a.CommissionedOn()),
		CreatedBy:      a.CreatedBy(),
		Version:        a.Version(),
		CreatedAt:      a.CreatedAt().UnixMilli(),
		UpdatedAt:      a.UpdatedAt().UnixMilli(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		model.ID,
		model.Code,
		model.Name,
		asset.Location{
			Factory:  model.Factory,
			Workshop: model.Workshop,
			Line:     model.Line,
			Station:  model.Station,
		},
		model.Vendor,
		model.Model,
		model.SerialNumber,
		model.Specification,
		vo.Status(model.Status),
		model.Criticality,
		millisPtrToTime(model.CommissionedOn),
		model.CreatedBy,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
