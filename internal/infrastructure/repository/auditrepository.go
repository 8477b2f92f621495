package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mantis/internal/domain/audit"
	"mantis/internal/infrastructure/persistence/mappers"
	"mantis/internal/infrastructure/persistence/models"
	db "mantis/internal/shared/db"
)

// AuditRepository persists the append-only audit trail. Entries are never
// updated or deleted.
type AuditRepository struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{
		db:     db,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditRepository) Append(ctx context.Context, e *audit.Entry) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *AuditRepository) List(ctx context.Context, filter audit.Filter, offset, limit int) ([]*audit.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.AuditEntryModel{})

	if filter.ActorID != nil {
		tx = tx.Where("actor_id = ?", *filter.ActorID)
	}
	if filter.Action != nil {
		tx = tx.Where("action = ?", filter.Action.String())
	}
	if filter.EntityType != "" {
		tx = tx.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		tx = tx.Where("entity_id = ?", filter.EntityID)
	}
	if filter.From != nil {
		tx = tx.Where("created_at >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		tx = tx.Where("created_at <= ?", filter.To.UnixMilli())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var rows []models.AuditEntryModel
	if err := tx.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}
