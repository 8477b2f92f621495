package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mantis/internal/domain/sparepart"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	"mantis/internal/shared/errors"
)

type SparePartRepository struct {
	db     *gorm.DB
	mapper mappers.SparePartMapper
}

func NewSparePartRepository(db *gorm.DB) *SparePartRepository {
	return &SparePartRepository{
		db:     db,
		mapper: mappers.NewSparePartMapper(),
	}
}

func (r *SparePartRepository) Save(ctx context.Context, p *sparepart.Part) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError("spare part code already exists")
		}
		return fmt.Errorf("failed to save spare part: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *SparePartRepository) FindByID(ctx context.Context, id uint) (*sparepart.Part, error) {
	var model models.SparePartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("spare part not found")
		}
		return nil, fmt.Errorf("failed to find spare part: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SparePartRepository) FindByCode(ctx context.Context, code string) (*sparepart.Part, error) {
	var model models.SparePartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("spare part not found")
		}
		return nil, fmt.Errorf("failed to find spare part: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SparePartRepository) Update(ctx context.Context, p *sparepart.Part) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// Optimistic locking: update only if version matches
	result := tx.
		Model(&models.SparePartModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"name":          model.Name,
			"specification": model.Specification,
			"category":      model.Category,
			"unit":          model.Unit,
			"supplier":      model.Supplier,
			"quantity":      model.Quantity,
			"safety_stock":  model.SafetyStock,
			"min_quantity":  model.MinQuantity,
			"max_quantity":  model.MaxQuantity,
			"unit_price":    model.UnitPrice,
			"location":      model.Location,
			"updated_at":    model.UpdatedAt,
			"version":       model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update spare part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("spare part was modified concurrently")
	}

	return nil
}

func (r *SparePartRepository) List(ctx context.Context, filter sparepart.Filter, offset, limit int) ([]*sparepart.Part, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.SparePartModel{})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		tx = tx.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
	}
	if filter.BelowMinimum != nil {
		if *filter.BelowMinimum {
			tx = tx.Where("quantity < min_quantity")
		} else {
			tx = tx.Where("quantity >= min_quantity")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count spare parts: %w", err)
	}

	var rows []models.SparePartModel
	if err := tx.
		Order("code ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list spare parts: %w", err)
	}

	parts := make([]*sparepart.Part, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		parts = append(parts, p)
	}

	return parts, total, nil
}

func (r *SparePartRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.SparePartModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check spare part code existence: %w", err)
	}

	return count > 0, nil
}

func (r *SparePartRepository) SaveMovements(ctx context.Context, movements []sparepart.Movement) error {
	if len(movements) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]*models.StockMovementModel, 0, len(movements))
	for _, mv := range movements {
		rows = append(rows, r.mapper.MovementToModel(mv))
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save stock movements: %w", err)
	}

	return nil
}

func (r *SparePartRepository) ListMovements(ctx context.Context, partID uint, offset, limit int) ([]sparepart.Movement, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.StockMovementModel{}).
		Where("part_id = ?", partID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stock movements: %w", err)
	}

	var rows []models.StockMovementModel
	if err := tx.
		Order("occurred_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list stock movements: %w", err)
	}

	movements := make([]sparepart.Movement, 0, len(rows))
	for i := range rows {
		movements = append(movements, r.mapper.MovementToDomain(&rows[i]))
	}

	return movements, total, nil
}
