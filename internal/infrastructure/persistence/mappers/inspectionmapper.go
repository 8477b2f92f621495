package mappers

import (
	"mantis/internal/domain/inspection"
	"mantis/internal/domain/inspection/valueobjects"
	"mantis/internal/infrastructure/persistence/models"
)

// InspectionMapper handles the conversion between inspection records and persistence models.
type InspectionMapper interface {
	ToModel(r *inspection.Record) *models.InspectionRecordModel
	ToDomain(model *models.InspectionRecordModel) (*inspection.Record, error)
}

type InspectionMapperImpl struct{}

func NewInspectionMapper() InspectionMapper {
	return &InspectionMapperImpl{}
}

func (m *InspectionMapperImpl) ToModel(r *inspection.Record) *models.InspectionRecordModel {
	return &models.InspectionRecordModel{
		ID:            r.ID(),
		AssetID:       r.AssetID(),
		InspectorID:   r.InspectorID(),
		Item:          r.Item(),
		Result:        r.Result().String(),
		MeasuredValue: r.MeasuredValue(),
		StandardRange: r.StandardRange(),
		Notes:         r.Notes(),
		InspectedAt:   r.InspectedAt().UnixMilli(),
		CreatedAt:     r.CreatedAt().UnixMilli(),
	}
}

func (m *InspectionMapperImpl) ToDomain(model *models.InspectionRecordModel) (*inspection.Record, error) {
	return inspection.ReconstructRecord(
		model.ID,
		model.AssetID,
		model.InspectorID,
		model.Item,
		valueobjects.Result(model.Result),
		model.MeasuredValue,
		model.StandardRange,
		model.Notes,
		millisToTime(model.InspectedAt),
		millisToTime(model.CreatedAt),
	)
}
