package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mantis/internal/infrastructure/persistence/models"
)

func setupWorkOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.WorkOrderModel{})
	require.NoError(t, err)

	return db
}

func insertWorkOrderWithCode(t *testing.T, db *gorm.DB, code string) {
	model := &models.WorkOrderModel{
		Code:        code,
		AssetID:     1,
		Type:        "CM",
		Status:      "open",
		Summary:     "seeded for code lookup",
		Priority:    "medium",
		RequestedBy: 1,
		Version:     1,
	}
	require.NoError(t, db.Create(model).Error)
}

func TestWorkOrderRepository_LastCodeWithPrefix(t *testing.T) {
	db := setupWorkOrderTestDB(t)
	repo := NewWorkOrderRepository(db)
	ctx := context.Background()

	t.Run("empty table returns empty code", func(t *testing.T) {
		code, err := repo.LastCodeWithPrefix(ctx, "WO-20260301-")
		assert.NoError(t, err)
		assert.Empty(t, code)
	})

	t.Run("returns highest sequence for the day", func(t *testing.T) {
		insertWorkOrderWithCode(t, db, "WO-20260301-001")
		insertWorkOrderWithCode(t, db, "WO-20260301-003")
		insertWorkOrderWithCode(t, db, "WO-20260301-002")
		insertWorkOrderWithCode(t, db, "WO-20260302-009")

		code, err := repo.LastCodeWithPrefix(ctx, "WO-20260301-")
		assert.NoError(t, err)
		assert.Equal(t, "WO-20260301-003", code)
	})

	t.Run("four digit suffix beats three digit", func(t *testing.T) {
		for i := 1; i <= 999; i += 499 {
			insertWorkOrderWithCode(t, db, fmt.Sprintf("WO-20260305-%03d", i))
		}
		insertWorkOrderWithCode(t, db, "WO-20260305-1000")

		code, err := repo.LastCodeWithPrefix(ctx, "WO-20260305-")
		assert.NoError(t, err)
		assert.Equal(t, "WO-20260305-1000", code)
	})
}
