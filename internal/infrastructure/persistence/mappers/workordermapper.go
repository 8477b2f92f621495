package mappers

import (
	"encoding/json"
	"fmt"

	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/infrastructure/persistence/models"
)

// WorkOrderMapper handles the conversion between WorkOrder domain entities and persistence models.
type WorkOrderMapper interface {
	ToModel(wo *workorder.WorkOrder) *models.WorkOrderModel
	ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error)
}

type WorkOrderMapperImpl struct{}

func NewWorkOrderMapper() WorkOrderMapper {
	return &WorkOrderMapperImpl{}
}

func (m *WorkOrderMapperImpl) ToModel(wo *workorder.WorkOrder) *models.WorkOrderModel {
	model := &models.WorkOrderModel{
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
		AssignedAt:      timePtrToMillis(wo.AssignedAt()),
		PlanID:          wo.PlanID(),
		PlannedStart:    timePtrToMillis(wo.PlannedStart()),
		PlannedEnd:      timePtrToMillis(wo.PlannedEnd()),
		ActualStart:     timePtrToMillis(wo.ActualStart()),
		ActualEnd:       timePtrToMillis(wo.ActualEnd()),
		FailureCode:     wo.FailureCode(),
		RootCause:       wo.RootCause(),
		ActionsTaken:    wo.ActionsTaken(),
		DowntimeMinutes: wo.DowntimeMinutes(),
		LaborHours:      wo.LaborHours(),
		PartsCost:       wo.PartsCost(),
		TotalCost:       wo.TotalCost(),
		CompletedBy:     wo.CompletedBy(),
		CompletedAt:     timePtrToMillis(wo.CompletedAt()),
		ClosedBy:        wo.ClosedBy(),
		ClosedAt:        timePtrToMillis(wo.ClosedAt()),
		Notes:           wo.Notes(),
		Version:         wo.Version(),
		CreatedAt:       wo.CreatedAt().UnixMilli(),
		UpdatedAt:       wo.UpdatedAt().UnixMilli(),
	}

	if items := wo.Checklist(); len(items) > 0 {
		checklistJSON, _ := json.Marshal(items)
		model.Checklist = string(checklistJSON)
	}

	return model
}

func (m *WorkOrderMapperImpl) ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error) {
	var checklist []workorder.ChecklistItem
	if model.Checklist != "" {
		if err := json.Unmarshal([]byte(model.Checklist), &checklist); err != nil {
			return nil, fmt.Errorf("failed to unmarshal work order checklist (id=%d): %w", model.ID, err)
		}
	}

	return workorder.ReconstructWorkOrder(
		model.ID,
		model.Code,
		model.AssetID,
		vo.Type(model.Type),
		vo.Status(model.Status),
		model.Summary,
		model.Description,
		vo.Priority(model.Priority),
		model.RequestedBy,
		model.AssigneeID,
		model.AssignedBy,
		millisPtrToTime(model.AssignedAt),
		model.PlanID,
		millisPtrToTime(model.PlannedStart),
		millisPtrToTime(model.PlannedEnd),
		millisPtrToTime(model.ActualStart),
		millisPtrToTime(model.ActualEnd),
		model.FailureCode,
		model.RootCause,
		model.ActionsTaken,
		checklist,
		model.DowntimeMinutes,
		model.LaborHours,
		model.PartsCost,
		model.TotalCost,
		model.CompletedBy,
		millisPtrToTime(model.CompletedAt),
		model.ClosedBy,
		millisPtrToTime(model.ClosedAt),
		model.Notes,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
