package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

func newTestAsset(t *testing.T, id uint, code string) *asset.Asset {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := asset.ReconstructAsset(
		id, code, "CNC Lathe "+code,
		asset.Location{Factory: "F1", Workshop: "W1", Line: "L1", Station: "S1"},
		"", "", "", "", "active", "B", nil, 2, 1, now, now,
	)
	require.NoError(t, err)
	return a
}

func TestImportWorkOrdersUseCase_Execute_PartialSuccess(t *testing.T) {
	assets := map[string]*asset.Asset{
		"EQ-001": newTestAsset(t, 1, "EQ-001"),
		"EQ-002": newTestAsset(t, 2, "EQ-002"),
	}

	seq := 0
	var saved []*workorder.WorkOrder
	workOrderRepo := &mockWorkOrderRepository{
		SaveFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			saved = append(saved, wo)
			return nil
		},
	}
	assetRepo := &mockAssetRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*asset.Asset, error) {
			if a, ok := assets[code]; ok {
				return a, nil
			}
			return nil, errors.NewNotFoundError("asset not found")
		},
	}
	codeGen := &mockCodeGenerator{
		NextCodeFunc: func(ctx context.Context) (string, error) {
			seq++
			return fmt.Sprintf("WO-20260301-%03d", seq), nil
		},
	}

	uc := NewImportWorkOrdersUseCase(workOrderRepo, assetRepo, codeGen, &mockEventDispatcher{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), ImportWorkOrdersCommand{
		RequestedBy: 2,
		Rows: []ImportRow{
			{AssetCode: "EQ-001", Summary: "Check spindle"},
			{AssetCode: "EQ-404", Summary: "Ghost asset"},
			{AssetCode: "EQ-002", Summary: "Replace belt", Priority: "high"},
			{AssetCode: "EQ-001", Summary: ""},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "row 2")
	assert.Contains(t, result.Errors[1], "row 4")

	require.Len(t, saved, 2)
	assert.Equal(t, "WO-20260301-001", saved[0].Code())
	assert.Equal(t, "WO-20260301-002", saved[1].Code())
}

func TestImportWorkOrdersUseCase_Execute_ErrorMessageCap(t *testing.T) {
	assetRepo := &mockAssetRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*asset.Asset, error) {
			return nil, errors.NewNotFoundError("asset not found")
		},
	}

	rows := make([]ImportRow, 30)
	for i := range rows {
		rows[i] = ImportRow{AssetCode: fmt.Sprintf("EQ-%03d", i), Summary: "x"}
	}

	uc := NewImportWorkOrdersUseCase(&mockWorkOrderRepository{}, assetRepo, &mockCodeGenerator{}, &mockEventDispatcher{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), ImportWorkOrdersCommand{RequestedBy: 2, Rows: rows})
	require.NoError(t, err)

	// all failures counted, messages capped
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 30, result.FailureCount)
	assert.Len(t, result.Errors, 20)
}

func TestImportWorkOrdersUseCase_Execute_EmptyBatch(t *testing.T) {
	uc := NewImportWorkOrdersUseCase(&mockWorkOrderRepository{}, &mockAssetRepository{}, &mockCodeGenerator{}, &mockEventDispatcher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ImportWorkOrdersCommand{RequestedBy: 2})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
