package migration

import (
	"fmt"

	"gorm.io/gorm"

	"mantis/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model managed by auto migration.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.AssetModel{},
		&models.WorkOrderModel{},
		&models.PlanModel{},
		&models.SparePartModel{},
		&models.StockMovementModel{},
		&models.InspectionRecordModel{},
		&models.AuditEntryModel{},
	}
}

// Run applies the schema for all registered models.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run auto migration: %w", err)
	}
	return nil
}
