package mappers

import (
	"mantis/internal/domain/sparepart"
	"mantis/internal/infrastructure/persistence/models"
)

// SparePartMapper handles the conversion between spare part domain entities,
// their movement ledger entries and persistence models.
type SparePartMapper interface {
	ToModel(p *sparepart.Part) *models.SparePartModel
	ToDomain(model *models.SparePartModel) (*sparepart.Part, error)
	MovementToModel(mv sparepart.Movement) *models.StockMovementModel
	MovementToDomain(model *models.StockMovementModel) sparepart.Movement
}

type SparePartMapperImpl struct{}

func NewSparePartMapper() SparePartMapper {
	return &SparePartMapperImpl{}
}

func (m *SparePartMapperImpl) ToModel(p *sparepart.Part) *models.SparePartModel {
	return &models.SparePartModel{
		ID:            p.ID(),
		Code:          p.Code(),
		Name:          p.Name(),
		Specification: p.Specification(),
		Category:      p.Category(),
		Unit:          p.Unit(),
		Supplier:      p.Supplier(),
		Quantity:      p.Quantity(),
		SafetyStock:   p.SafetyStock(),
		MinQuantity:   p.MinQuantity(),
		MaxQuantity:   p.MaxQuantity(),
		UnitPrice:     p.UnitPrice(),
		Location:      p.Location(),
		Version:       p.Version(),
		CreatedAt:     p.CreatedAt().UnixMilli(),
		UpdatedAt:     p.UpdatedAt().UnixMilli(),
	}
}

func (m *SparePartMapperImpl) ToDomain(model *models.SparePartModel) (*sparepart.Part, error) {
	return sparepart.ReconstructPart(
		model.ID,
		model.Code,
		model.Name,
		model.Specification,
		model.Category,
		model.Unit,
		model.Supplier,
		model.Quantity,
		model.SafetyStock,
		model.MinQuantity,
		model.MaxQuantity,
		model.UnitPrice,
		model.Location,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *SparePartMapperImpl) MovementToModel(mv sparepart.Movement) *models.StockMovementModel {
	return &models.StockMovementModel{
		ID:            mv.ID,
		PartID:        mv.PartID,
		Type:          string(mv.Type),
		Quantity:      mv.Quantity,
		QuantityAfter: mv.QuantityAfter,
		WorkOrderID:   mv.WorkOrderID,
		Reason:        mv.Reason,
		PerformedBy:   mv.PerformedBy,
		OccurredAt:    mv.OccurredAt.UnixMilli(),
	}
}

func (m *SparePartMapperImpl) MovementToDomain(model *models.StockMovementModel) sparepart.Movement {
	return sparepart.Movement{
		ID:            model.ID,
		PartID:        model.PartID,
		Type:          sparepart.MovementType(model.Type),
		Quantity:      model.Quantity,
		QuantityAfter: model.QuantityAfter,
		WorkOrderID:   model.WorkOrderID,
		Reason:        model.Reason,
		PerformedBy:   model.PerformedBy,
		OccurredAt:    millisToTime(model.OccurredAt),
	}
}
