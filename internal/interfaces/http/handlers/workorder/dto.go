package workorder

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/workorder/usecases"
	"mantis/internal/shared/errors"
)

type ChecklistItemRequest struct {
	Item     string `json:"item" binding:"required,max=200"`
	Standard string `json:"standard,omitempty"`
}

type CreateWorkOrderRequest struct {
	AssetID      uint                   `json:"asset_id" binding:"required"`
	Type         string                 `json:"type,omitempty"`
	Summary      string                 `json:"summary" binding:"required,max=200"`
	Description  string                 `json:"description,omitempty"`
	Priority     string                 `json:"priority,omitempty"`
	Checklist    []ChecklistItemRequest `json:"checklist,omitempty"`
	PlannedStart *time.Time             `json:"planned_start,omitempty"`
	PlannedEnd   *time.Time             `json:"planned_end,omitempty"`
}

func (r *CreateWorkOrderRequest) ToCommand(requestedBy uint) usecases.CreateWorkOrderCommand {
	checklist := make([]usecases.ChecklistItemInput, 0, len(r.Checklist))
	for _, item := range r.Checklist {
		checklist = append(checklist, usecases.ChecklistItemInput{
			Item:     item.Item,
			Standard: item.Standard,
		})
	}

	return usecases.CreateWorkOrderCommand{
		AssetID:      r.AssetID,
		Type:         r.Type,
		Summary:      r.Summary,
		Description:  r.Description,
		Priority:     r.Priority,
		RequestedBy:  requestedBy,
		Checklist:    checklist,
		PlannedStart: r.PlannedStart,
		PlannedEnd:   r.PlannedEnd,
	}
}

type AssignWorkOrderRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type CompleteWorkOrderRequest struct {
	ActionsTaken    string   `json:"actions_taken" binding:"required,max=5000"`
	RootCause       *string  `json:"root_cause,omitempty"`
	FailureCode     *string  `json:"failure_code,omitempty"`
	DowntimeMinutes *uint    `json:"downtime_minutes,omitempty"`
	LaborHours      *float64 `json:"labor_hours,omitempty"`
	PartsCost       *float64 `json:"parts_cost,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

type ImportRowRequest struct {
	AssetCode   string `json:"asset_code"`
	Type        string `json:"type,omitempty"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

type ImportWorkOrdersRequest struct {
	Rows []ImportRowRequest `json:"rows" binding:"required"`
}

func (r *ImportWorkOrdersRequest) ToCommand(requestedBy uint) usecases.ImportWorkOrdersCommand {
	rows := make([]usecases.ImportRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, usecases.ImportRow{
			AssetCode:   row.AssetCode,
			Type:        row.Type,
			Summary:     row.Summary,
			Description: row.Description,
			Priority:    row.Priority,
		})
	}

	return usecases.ImportWorkOrdersCommand{
		Rows:        rows,
		RequestedBy: requestedBy,
	}
}

func parseWorkOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid work order ID")
	}
	return uint(id), nil
}

func parseListWorkOrdersQuery(c *gin.Context) usecases.ListWorkOrdersQuery {
	query := usecases.ListWorkOrdersQuery{
		Status:    c.Query("status"),
		Type:      c.Query("type"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if v, err := strconv.ParseUint(c.Query("asset_id"), 10, 32); err == nil && v > 0 {
		assetID := uint(v)
		query.AssetID = &assetID
	}
	if v, err := strconv.ParseUint(c.Query("assignee_id"), 10, 32); err == nil && v > 0 {
		assigneeID := uint(v)
		query.AssigneeID = &assigneeID
	}
	if v, err := strconv.ParseUint(c.Query("plan_id"), 10, 32); err == nil && v > 0 {
		planID := uint(v)
		query.PlanID = &planID
	}

	return query
}
