package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mantis/internal/domain/asset"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	"mantis/internal/shared/errors"
)

var allowedAssetOrderByFields = map[string]bool{
	"id":         true,
	"code":       true,
	"name":       true,
	"status":     true,
	"factory":    true,
	"workshop":   true,
	"created_at": true,
	"updated_at": true,
}

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errors.NewConflictError("asset code already exists")
		}
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// Optimistic locking: update only if version matches
	result := tx.
		Model(&models.AssetModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"name":            model.Name,
			"factory":         model.Factory,
			"workshop":        model.Workshop,
			"line":            model.Line,
			"station":         model.Station,
			"vendor":          model.Vendor,
			"model":           model.Model,
			"serial_number":   model.SerialNumber,
			"specification":   model.Specification,
			"status":          model.Status,
			"criticality":     model.Criticality,
			"commissioned_on": model.CommissionedOn,
			"updated_at":      model.UpdatedAt,
			"version":         model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("asset was modified concurrently")
	}

	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) GetByCode(ctx context.Context, code string) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("asset not found")
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.AssetModel{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Factory != "" {
		tx = tx.Where("factory = ?", filter.Factory)
	}
	if filter.Workshop != "" {
		tx = tx.Where("workshop = ?", filter.Workshop)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedAssetOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	offset := (filter.Page - 1) * filter.PageSize

	var rows []models.AssetModel
	if err := tx.
		Order(fmt.Sprintf("%s %s", orderBy, direction)).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, a)
	}

	return assets, total, nil
}
