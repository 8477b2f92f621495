package dto

import (
	"time"

	"mantis/internal/domain/maintenance"
)

type TemplateItemDTO struct {
	Item     string `json:"item"`
	Standard string `json:"standard,omitempty"`
}

type PlanDTO struct {
	ID                uint              `json:"id"`
	Code              string            `json:"code"`
	AssetID           uint              `json:"asset_id"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	TriggerType       string            `json:"trigger_type"`
	FrequencyValue    uint              `json:"frequency_value,omitempty"`
	FrequencyUnit     string            `json:"frequency_unit,omitempty"`
	CounterName       string            `json:"counter_name,omitempty"`
	CounterThreshold  *float64          `json:"counter_threshold,omitempty"`
	ChecklistTemplate []TemplateItemDTO `json:"checklist_template"`
	EstimatedHours    *float64          `json:"estimated_hours,omitempty"`
	EstimatedCost     *float64          `json:"estimated_cost,omitempty"`
	RequiredSkills    string            `json:"required_skills,omitempty"`
	Priority          string            `json:"priority"`
	IsActive          bool              `json:"is_active"`
	LastGeneratedDate *time.Time        `json:"last_generated_date,omitempty"`
	LastCounterValue  *float64          `json:"last_counter_value,omitempty"`
	NextDueDate       *time.Time        `json:"next_due_date,omitempty"`
	CreatedBy         uint              `json:"created_by"`
	Version           int               `json:"version"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func FromPlan(p *maintenance.Plan) *PlanDTO {
	items := make([]TemplateItemDTO, 0, len(p.ChecklistTemplate()))
	for _, item := range p.ChecklistTemplate() {
		items = append(items, TemplateItemDTO{Item: item.Item, Standard: item.Standard})
	}

	d := &PlanDTO{
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
		ChecklistTemplate: items,
		EstimatedHours:    p.EstimatedHours(),
		EstimatedCost:     p.EstimatedCost(),
		RequiredSkills:    p.RequiredSkills(),
		Priority:          p.Priority().String(),
		IsActive:          p.IsActive(),
		LastGeneratedDate: p.LastGeneratedDate(),
		LastCounterValue:  p.LastCounterValue(),
		CreatedBy:         p.CreatedBy(),
		Version:           p.Version(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}

	if next, ok := p.NextDueDate(); ok {
		d.NextDueDate = &next
	}

	return d
}
