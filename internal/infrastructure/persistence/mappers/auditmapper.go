package mappers

import (
	"mantis/internal/domain/audit"
	"mantis/internal/infrastructure/persistence/models"
)

// AuditMapper handles the conversion between audit entries and persistence models.
type AuditMapper interface {
	ToModel(e *audit.Entry) *models.AuditEntryModel
	ToDomain(model *models.AuditEntryModel) (*audit.Entry, error)
}

type AuditMapperImpl struct{}

func NewAuditMapper() AuditMapper {
	return &AuditMapperImpl{}
}

func (m *AuditMapperImpl) ToModel(e *audit.Entry) *models.AuditEntryModel {
	return &models.AuditEntryModel{
		ID:         e.ID(),
		ActorID:    e.ActorID(),
		Action:     e.Action().String(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		Snapshot:   e.Snapshot(),
		CreatedAt:  e.CreatedAt().UnixMilli(),
	}
}

func (m *AuditMapperImpl) ToDomain(model *models.AuditEntryModel) (*audit.Entry, error) {
	return audit.ReconstructEntry(
		model.ID,
		model.ActorID,
		audit.Action(model.Action),
		model.EntityType,
		model.EntityID,
		model.Snapshot,
		millisToTime(model.CreatedAt),
	)
}
