package maintenance

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/maintenance/usecases"
	"mantis/internal/shared/errors"
)

type TemplateItemRequest struct {
	Item     string `json:"item" binding:"required,max=200"`
	Standard string `json:"standard,omitempty"`
}

type CreatePlanRequest struct {
	Code              string                `json:"code" binding:"required,max=50"`
	AssetID           uint                  `json:"asset_id" binding:"required"`
	Title             string                `json:"title" binding:"required,max=200"`
	Description       string                `json:"description,omitempty"`
	TriggerType       string                `json:"trigger_type" binding:"required,oneof=time counter"`
	FrequencyValue    uint                  `json:"frequency_value,omitempty"`
	FrequencyUnit     string                `json:"frequency_unit,omitempty"`
	CounterName       string                `json:"counter_name,omitempty"`
	CounterThreshold  *float64              `json:"counter_threshold,omitempty"`
	ChecklistTemplate []TemplateItemRequest `json:"checklist_template,omitempty"`
	EstimatedHours    *float64              `json:"estimated_hours,omitempty"`
	EstimatedCost     *float64              `json:"estimated_cost,omitempty"`
	RequiredSkills    string                `json:"required_skills,omitempty"`
	Priority          string                `json:"priority,omitempty"`
}

func (r *CreatePlanRequest) ToCommand(createdBy uint) usecases.CreatePlanCommand {
	template := make([]usecases.TemplateItemInput, 0, len(r.ChecklistTemplate))
	for _, item := range r.ChecklistTemplate {
		template = append(template, usecases.TemplateItemInput{
			Item:     item.Item,
			Standard: item.Standard,
		})
	}

	return usecases.CreatePlanCommand{
		Code:              r.Code,
		AssetID:           r.AssetID,
		Title:             r.Title,
		Description:       r.Description,
		TriggerType:       r.TriggerType,
		FrequencyValue:    r.FrequencyValue,
		FrequencyUnit:     r.FrequencyUnit,
		CounterName:       r.CounterName,
		CounterThreshold:  r.CounterThreshold,
		ChecklistTemplate: template,
		EstimatedHours:    r.EstimatedHours,
		EstimatedCost:     r.EstimatedCost,
		RequiredSkills:    r.RequiredSkills,
		Priority:          r.Priority,
		CreatedBy:         createdBy,
	}
}

type EvaluatePlanRequest struct {
	Date           *time.Time `json:"date,omitempty"`
	CurrentCounter *float64   `json:"current_counter,omitempty"`
}

type GenerateWorkOrderRequest struct {
	CurrentCounter *float64 `json:"current_counter,omitempty"`
}

func parsePlanID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid plan ID")
	}
	return uint(id), nil
}

func parseListPlansQuery(c *gin.Context) usecases.ListPlansQuery {
	query := usecases.ListPlansQuery{
		TriggerType: c.Query("trigger_type"),
		Priority:    c.Query("priority"),
		Search:      c.Query("search"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	}

	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if v, err := strconv.ParseUint(c.Query("asset_id"), 10, 32); err == nil && v > 0 {
		assetID := uint(v)
		query.AssetID = &assetID
	}
	if v := c.Query("is_active"); v != "" {
		isActive := v == "true"
		query.IsActive = &isActive
	}

	return query
}
