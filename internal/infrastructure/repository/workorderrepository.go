package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"mantis/internal/domain/workorder"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	"mantis/internal/shared/errors"
)

// allowedWorkOrderOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedWorkOrderOrderByFields = map[string]bool{
	"id":           true,
	"code":         true,
	"status":       true,
	"type":         true,
	"priority":     true,
	"asset_id":     true,
	"assignee_id":  true,
	"planned_end":  true,
	"created_at":   true,
	"updated_at":   true,
	"completed_at": true,
}

type WorkOrderRepository struct {
	db     *gorm.DB
	mapper mappers.WorkOrderMapper
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{
		db:     db,
		mapper: mappers.NewWorkOrderMapper(),
	}
}

func (r *WorkOrderRepository) Save(ctx context.Context, wo *workorder.WorkOrder) error {
	model := r.mapper.ToModel(wo)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError("work order code already exists")
		}
		return fmt.Errorf("failed to save work order: %w", err)
	}

	return wo.SetID(model.ID)
}

func (r *WorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	model := r.mapper.ToModel(wo)
	tx := db.GetTxFromContext(ctx, r.db)

	// Optimistic locking: update only if version matches
	result := tx.
		Model(&models.WorkOrderModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"status":           model.Status,
			"summary":          model.Summary,
			"description":      model.Description,
			"priority":         model.Priority,
			"assignee_id":      model.AssigneeID,
			"assigned_by":      model.AssignedBy,
			"assigned_at":      model.AssignedAt,
			"planned_start":    model.PlannedStart,
			"planned_end":      model.PlannedEnd,
			"actual_start":     model.ActualStart,
			"actual_end":       model.ActualEnd,
			"failure_code":     model.FailureCode,
			"root_cause":       model.RootCause,
			"actions_taken":    model.ActionsTaken,
			"checklist":        model.Checklist,
			"downtime_minutes": model.DowntimeMinutes,
			"labor_hours":      model.LaborHours,
			"parts_cost":       model.PartsCost,
			"total_cost":       model.TotalCost,
			"completed_by":     model.CompletedBy,
			"completed_at":     model.CompletedAt,
			"closed_by":        model.ClosedBy,
			"closed_at":        model.ClosedAt,
			"notes":            model.Notes,
			"updated_at":       model.UpdatedAt,
			"version":          model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update work order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("work order was modified concurrently")
	}

	return nil
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkOrderRepository) GetByCode(ctx context.Context, code string) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkOrderRepository) List(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.WorkOrderModel{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		tx = tx.Where("type = ?", filter.Type.String())
	}
	if filter.Priority != nil {
		tx = tx.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssetID != nil {
		tx = tx.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.AssigneeID != nil {
		tx = tx.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.PlanID != nil {
		tx = tx.Where("plan_id = ?", *filter.PlanID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("code LIKE ? OR summary LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count work orders: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedWorkOrderOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	offset := (filter.Page - 1) * filter.PageSize

	var rows []models.WorkOrderModel
	if err := tx.
		Order(fmt.Sprintf("%s %s", orderBy, direction)).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list work orders: %w", err)
	}

	orders := make([]*workorder.WorkOrder, 0, len(rows))
	for i := range rows {
		wo, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, wo)
	}

	return orders, total, nil
}

func (r *WorkOrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "status")
}

func (r *WorkOrderRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "type")
}

func (r *WorkOrderRepository) CountByPriority(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "priority")
}

func (r *WorkOrderRepository) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Key   string
		Count int64
	}
	if err := tx.
		Model(&models.WorkOrderModel{}).
		Select(fmt.Sprintf("`%s` AS `key`, COUNT(*) AS `count`", column)).
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count work orders by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// CountOverdue counts work orders still in an active status whose planned
// end has already passed.
func (r *WorkOrderRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.WorkOrderModel{}).
		Where("status IN ?", []string{"open", "assigned", "in_progress"}).
		Where("planned_end IS NOT NULL AND planned_end < ?", now.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count overdue work orders: %w", err)
	}

	return count, nil
}

func (r *WorkOrderRepository) LastCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.WorkOrderModel
	// Order by length before value so WO-...-1000 beats WO-...-999 once the
	// day sequence grows past three digits.
	err := tx.
		Where("code LIKE ?", prefix+"%").
		Order("LENGTH(code) DESC, code DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up last work order code: %w", err)
	}

	return model.Code, nil
}
