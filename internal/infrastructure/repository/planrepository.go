package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mantis/internal/domain/maintenance"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	"mantis/internal/shared/errors"
)

var allowedPlanOrderByFields = map[string]bool{
	"id":           true,
	"code":         true,
	"title":        true,
	"trigger_type": true,
	"priority":     true,
	"asset_id":     true,
	"is_active":    true,
	"created_at":   true,
	"updated_at":   true,
}

type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{
		db:     db,
		mapper: mappers.NewPlanMapper(),
	}
}

func (r *PlanRepository) Save(ctx context.Context, plan *maintenance.Plan) error {
	model := r.mapper.ToModel(plan)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError("plan code already exists")
		}
		return fmt.Errorf("failed to save plan: %w", err)
	}

	return plan.SetID(model.ID)
}

func (r *PlanRepository) Update(ctx context.Context, plan *maintenance.Plan) error {
	model := r.mapper.ToModel(plan)
	tx := db.GetTxFromContext(ctx, r.db)

	// Optimistic locking: update only if version matches
	result := tx.
		Model(&models.PlanModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"title":               model.Title,
			"description":         model.Description,
			"frequency_value":     model.FrequencyValue,
			"frequency_unit":      model.FrequencyUnit,
			"counter_name":        model.CounterName,
			"counter_threshold":   model.CounterThreshold,
			"checklist_template":  model.ChecklistTemplate,
			"estimated_hours":     model.EstimatedHours,
			"estimated_cost":      model.EstimatedCost,
			"required_skills":     model.RequiredSkills,
			"priority":            model.Priority,
			"is_active":           model.IsActive,
			"last_generated_date": model.LastGeneratedDate,
			"last_counter_value":  model.LastCounterValue,
			"updated_at":          model.UpdatedAt,
			"version":             model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("plan was modified concurrently")
	}

	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*maintenance.Plan, error) {
	var model models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PlanRepository) GetByCode(ctx context.Context, code string) (*maintenance.Plan, error) {
	var model models.PlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PlanRepository) List(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Plan, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{})

	if filter.TriggerType != nil {
		tx = tx.Where("trigger_type = ?", filter.TriggerType.String())
	}
	if filter.AssetID != nil {
		tx = tx.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.IsActive != nil {
		tx = tx.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Priority != nil {
		tx = tx.Where("priority = ?", filter.Priority.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("code LIKE ? OR title LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedPlanOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	offset := (filter.Page - 1) * filter.PageSize

	var rows []models.PlanModel
	if err := tx.
		Order(fmt.Sprintf("%s %s", orderBy, direction)).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]*maintenance.Plan, 0, len(rows))
	for i := range rows {
		plan, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, plan)
	}

	return plans, total, nil
}
