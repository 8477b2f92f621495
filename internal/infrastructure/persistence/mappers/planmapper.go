package mappers

import (
	"encoding/json"
	"fmt"

	"mantis/internal/domain/maintenance"
	vo "mantis/internal/domain/maintenance/valueobjects"
	"mantis/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between Plan domain entities and persistence models.
type PlanMapper interface {
	ToModel(p *maintenance.Plan) *models.PlanModel
	ToDomain(model *models.PlanModel) (*maintenance.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToModel(p *maintenance.Plan) *models.PlanModel {
	model := &models.PlanModel{
		ID:                p.ID(),
		Code:              p.Code(),
		AssetID:           p.AssetID(),
		Title:             p.Title(),
		Description:       p.Description(),
		TriggerType:       p.TriggerType().String(),
		FrequencyValue:    p.FrequencyValue(),
		FrequencyUnit:     p.FrequencyUnit().String(),
		CounterName:       p.CounterName(),
		CounterThreshold:  p.CounterThreshold(),
		EstimatedHours:    p.EstimatedHours(),
		EstimatedCost:     p.EstimatedCost(),
		RequiredSkills:    p.RequiredSkills(),
		Priority:          p.Priority().String(),
		IsActive:          p.IsActive(),
		LastGeneratedDate: timePtrToMillis(p.LastGeneratedDate()),
		LastCounterValue:  p.LastCounterValue(),
		CreatedBy:         p.CreatedBy(),
		Version:           p.Version(),
		CreatedAt:         p.CreatedAt().UnixMilli(),
		UpdatedAt:         p.UpdatedAt().UnixMilli(),
	}

	if items := p.ChecklistTemplate(); len(items) > 0 {
		templateJSON, _ := json.Marshal(items)
		model.ChecklistTemplate = string(templateJSON)
	}

	return model
}

func (m *PlanMapperImpl) ToDomain(model *models.PlanModel) (*maintenance.Plan, error) {
	var template []maintenance.TemplateItem
	if model.ChecklistTemplate != "" {
		if err := json.Unmarshal([]byte(model.ChecklistTemplate), &template); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan checklist template (id=%d): %w", model.ID, err)
		}
	}

	return maintenance.ReconstructPlan(
		model.ID,
		model.Code,
		model.AssetID,
		model.Title,
		model.Description,
		vo.TriggerType(model.TriggerType),
		model.FrequencyValue,
		vo.FrequencyUnit(model.FrequencyUnit),
		model.CounterName,
		model.CounterThreshold,
		template,
		model.EstimatedHours,
		model.EstimatedCost,
		model.RequiredSkills,
		vo.Priority(model.Priority),
		model.IsActive,
		millisPtrToTime(model.LastGeneratedDate),
		model.LastCounterValue,
		model.CreatedBy,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
