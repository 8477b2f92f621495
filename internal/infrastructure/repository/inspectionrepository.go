package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mantis/internal/domain/inspection"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
	"mantis/internal/shared/errors"
)

type InspectionRepository struct {
	db     *gorm.DB
	mapper mappers.InspectionMapper
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{
		db:     db,
		mapper: mappers.NewInspectionMapper(),
	}
}

func (r *InspectionRepository) Save(ctx context.Context, rec *inspection.Record) error {
	model := r.mapper.ToModel(rec)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save inspection record: %w", err)
	}

	return rec.SetID(model.ID)
}

func (r *InspectionRepository) FindByID(ctx context.Context, id uint) (*inspection.Record, error) {
	var model models.InspectionRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("inspection record not found")
		}
		return nil, fmt.Errorf("failed to find inspection record: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InspectionRepository) List(ctx context.Context, filter inspection.Filter, offset, limit int) ([]*inspection.Record, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.InspectionRecordModel{})

	if filter.AssetID != nil {
		tx = tx.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.InspectorID != nil {
		tx = tx.Where("inspector_id = ?", *filter.InspectorID)
	}
	if filter.From != nil {
		tx = tx.Where("inspected_at >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		tx = tx.Where("inspected_at <= ?", filter.To.UnixMilli())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inspection records: %w", err)
	}

	var rows []models.InspectionRecordModel
	if err := tx.
		Order("inspected_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inspection records: %w", err)
	}

	records := make([]*inspection.Record, 0, len(rows))
	for i := range rows {
		rec, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, total, nil
}

func (r *InspectionRepository) Summarize(ctx context.Context, assetID uint, from, to time.Time) (inspection.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Result string
		Count  int64
	}
	if err := tx.
		Model(&models.InspectionRecordModel{}).
		Select("result, COUNT(*) AS count").
		Where("asset_id = ? AND inspected_at >= ? AND inspected_at <= ?", assetID, from.UnixMilli(), to.UnixMilli()).
		Group("result").
		Scan(&rows).Error; err != nil {
		return inspection.Summary{}, fmt.Errorf("failed to summarize inspections: %w", err)
	}

	summary := inspection.Summary{AssetID: assetID}
	for _, row := range rows {
		summary.Total += row.Count
		switch row.Result {
		case "ok":
			summary.PassCount += row.Count
		case "ng":
			summary.FailCount += row.Count
		}
	}

	return summary, nil
}
