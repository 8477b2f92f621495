package dto

import (
	"time"

	"mantis/internal/domain/workorder"
)

type ChecklistItemDTO struct {
	Item     string `json:"item"`
	Standard string `json:"standard,omitempty"`
	Result   string `json:"result,omitempty"`
}

type WorkOrderDTO struct {
	ID              uint               `json:"id"`
	Code            string             `json:"code"`
	AssetID         uint               `json:"asset_id"`
	Type            string             `json:"type"`
	Status          string             `json:"status"`
	Summary         string             `json:"summary"`
	Description     string             `json:"description,omitempty"`
	Priority        string             `json:"priority"`
	RequestedBy     uint               `json:"requested_by"`
	AssigneeID      *uint              `json:"assignee_id,omitempty"`
	AssignedBy      *uint              `json:"assigned_by,omitempty"`
	AssignedAt      *time.Time         `json:"assigned_at,omitempty"`
	PlanID          *uint              `json:"plan_id,omitempty"`
	PlannedStart    *time.Time         `json:"planned_start,omitempty"`
	PlannedEnd      *time.Time         `json:"planned_end,omitempty"`
	ActualStart     *time.Time         `json:"actual_start,omitempty"`
	ActualEnd       *time.Time         `json:"actual_end,omitempty"`
	FailureCode     string             `json:"failure_code,omitempty"`
	RootCause       string             `json:"root_cause,omitempty"`
	ActionsTaken    string             `json:"actions_taken,omitempty"`
	Checklist       []ChecklistItemDTO `json:"checklist"`
	DowntimeMinutes uint               `json:"downtime_minutes"`
	LaborHours      float64            `json:"labor_hours"`
	PartsCost       float64            `json:"parts_cost"`
	TotalCost       float64            `json:"total_cost"`
	CompletedBy     *uint              `json:"completed_by,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	ClosedBy        *uint              `json:"closed_by,omitempty"`
	ClosedAt        *time.Time         `json:"closed_at,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Version         int                `json:"version"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromWorkOrder(wo *workorder.WorkOrder) *WorkOrderDTO {
	checklist := make([]ChecklistItemDTO, 0, len(wo.Checklist()))
	for _, item := range wo.Checklist() {
		checklist = append(checklist, ChecklistItemDTO{
			Item:     item.Item,
			Standard: item.Standard,
			Result:   item.Result,
		})
	}

	return &WorkOrderDTO{
		ID:              wo.ID(),
		Code:            wo.Code(),
		AssetID:         wo.AssetID(),
		Type:            wo.Type().String(),
		Status:          wo.Status().String(),
		Summary:         wo.Summary(),
		Description:     wo.Description(),
		Priority:        wo.Priority().String(),
		RequestedBy:     wo.RequestedBy(),
		AssigneeID:      wo.AssigneeID(),
		AssignedBy:      wo.AssignedBy(),
		AssignedAt:      wo.AssignedAt(),
		PlanID:          wo.PlanID(),
		PlannedStart:    wo.PlannedStart(),
		PlannedEnd:      wo.PlannedEnd(),
		ActualStart:     wo.ActualStart(),
		ActualEnd:       wo.ActualEnd(),
		FailureCode:     wo.FailureCode(),
		RootCause:       wo.RootCause(),
		ActionsTaken:    wo.ActionsTaken(),
		Checklist:       checklist,
		DowntimeMinutes: wo.DowntimeMinutes(),
		LaborHours:      wo.LaborHours(),
		PartsCost:       wo.PartsCost(),
		TotalCost:       wo.TotalCost(),
		CompletedBy:     wo.CompletedBy(),
		CompletedAt:     wo.CompletedAt(),
		ClosedBy:        wo.ClosedBy(),
		ClosedAt:        wo.ClosedAt(),
		Notes:           wo.Notes(),
		Version:         wo.Version(),
		CreatedAt:       wo.CreatedAt(),
		UpdatedAt:       wo.UpdatedAt(),
	}
}
