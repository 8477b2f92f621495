package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/sparepart"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

func newStockedPart(t *testing.T, id uint, qty float64) *sparepart.Part {
	t.Helper()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := sparepart.ReconstructPart(
		id, "SP-001", "Bearing 6204", "6204-2RS", "bearing", "pcs", "SKF",
		qty, 2, 4, 50, 12.5, "A-01-03", 1, created, created,
	)
	require.NoError(t, err)
	return p
}

func TestStockOutUseCase_Execute_Success(t *testing.T) {
	var savedMovements []sparepart.Movement
	partRepo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sparepart.Part, error) {
			return newStockedPart(t, id, 10), nil
		},
		SaveMovementsFunc: func(ctx context.Context, movements []sparepart.Movement) error {
			savedMovements = movements
			return nil
		},
	}

	uc := NewStockOutUseCase(partRepo, &mockTransactor{}, logger.NewNop())

	woID := uint(42)
	result, err := uc.Execute(context.Background(), StockOutCommand{
		PartID:      1,
		Quantity:    3,
		WorkOrderID: &woID,
		Reason:      "seal replacement",
		PerformedBy: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, result.Quantity)
	assert.False(t, result.BelowMinimum)

	require.Len(t, savedMovements, 1)
	assert.Equal(t, sparepart.MovementOut, savedMovements[0].Type)
	assert.Equal(t, 3.0, savedMovements[0].Quantity)
	require.NotNil(t, savedMovements[0].WorkOrderID)
	assert.Equal(t, woID, *savedMovements[0].WorkOrderID)
}

func TestStockOutUseCase_Execute_InsufficientStock(t *testing.T) {
	partRepo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sparepart.Part, error) {
			return newStockedPart(t, id, 2), nil
		},
		UpdateFunc: func(ctx context.Context, p *sparepart.Part) error {
			t.Fatal("update must not be called for a rejected movement")
			return nil
		},
	}

	uc := NewStockOutUseCase(partRepo, &mockTransactor{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), StockOutCommand{
		PartID:      1,
		Quantity:    5,
		PerformedBy: 7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestStockOutUseCase_Execute_FlagsBelowMinimum(t *testing.T) {
	partRepo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sparepart.Part, error) {
			return newStockedPart(t, id, 5), nil
		},
	}

	uc := NewStockOutUseCase(partRepo, &mockTransactor{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), StockOutCommand{
		PartID:      1,
		Quantity:    2,
		PerformedBy: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.Quantity)
	assert.True(t, result.BelowMinimum)
}

func TestStockInUseCase_Execute_RejectsNonPositive(t *testing.T) {
	partRepo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sparepart.Part, error) {
			return newStockedPart(t, id, 10), nil
		},
	}

	uc := NewStockInUseCase(partRepo, &mockTransactor{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), StockInCommand{
		PartID:      1,
		Quantity:    0,
		PerformedBy: 7,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestAdjustStockUseCase_Execute_Success(t *testing.T) {
	var updated *sparepart.Part
	partRepo := &mockPartRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sparepart.Part, error) {
			return newStockedPart(t, id, 10), nil
		},
		UpdateFunc: func(ctx context.Context, p *sparepart.Part) error {
			updated = p
			return nil
		},
	}

	uc := NewAdjustStockUseCase(partRepo, &mockTransactor{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), AdjustStockCommand{
		PartID:      1,
		NewQuantity: 8,
		Reason:      "cycle count",
		PerformedBy: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, result.Quantity)

	require.NotNil(t, updated)
	assert.Equal(t, 2, updated.Version())
}
