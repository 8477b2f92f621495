package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

func newInProgressWorkOrder(t *testing.T, id uint) *workorder.WorkOrder {
	t.Helper()
	wo := newOpenWorkOrder(t, id)
	require.NoError(t, wo.Start(10, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	wo.ClearEvents()
	return wo
}

func TestCompleteWorkOrderUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	laborHours := 4.5
	partsCost := 120.0

	var updated *workorder.WorkOrder
	workOrderRepo := &mockWorkOrderRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return newInProgressWorkOrder(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			updated = wo
			return nil
		},
	}
	dispatcher := &mockEventDispatcher{}

	uc := NewCompleteWorkOrderUseCase(workOrderRepo, dispatcher, logger.NewNop())
	uc.now = func() time.Time { return now }

	result, err := uc.Execute(context.Background(), CompleteWorkOrderCommand{
		WorkOrderID:  1,
		CompletedBy:  10,
		ActionsTaken: "Replaced hydraulic seal and refilled oil",
		LaborHours:   &laborHours,
		PartsCost:    &partsCost,
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, partsCost, result.TotalCost)

	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusCompleted, updated.Status())
	assert.Equal(t, laborHours, updated.LaborHours())
	// labor carries no rate; the rollup is parts cost alone
	assert.Equal(t, partsCost, updated.TotalCost())
	require.NotNil(t, updated.CompletedAt())
	assert.Equal(t, now, *updated.CompletedAt())

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, workorder.EventTypeCompleted, dispatcher.published[0].GetEventType())
}

func TestCompleteWorkOrderUseCase_Execute_MissingActionsTaken(t *testing.T) {
	workOrderRepo := &mockWorkOrderRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return newInProgressWorkOrder(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			t.Fatal("update must not be called for a rejected transition")
			return nil
		},
	}

	uc := NewCompleteWorkOrderUseCase(workOrderRepo, &mockEventDispatcher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CompleteWorkOrderCommand{
		WorkOrderID: 1,
		CompletedBy: 10,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestCompleteWorkOrderUseCase_Execute_NotInProgress(t *testing.T) {
	workOrderRepo := &mockWorkOrderRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return newOpenWorkOrder(t, id), nil
		},
	}

	uc := NewCompleteWorkOrderUseCase(workOrderRepo, &mockEventDispatcher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CompleteWorkOrderCommand{
		WorkOrderID:  1,
		CompletedBy:  10,
		ActionsTaken: "done",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestCompleteWorkOrderUseCase_Execute_RejectsNegativeCost(t *testing.T) {
	uc := NewCompleteWorkOrderUseCase(&mockWorkOrderRepository{}, &mockEventDispatcher{}, logger.NewNop())

	negative := -1.0
	_, err := uc.Execute(context.Background(), CompleteWorkOrderCommand{
		WorkOrderID:  1,
		CompletedBy:  10,
		ActionsTaken: "done",
		PartsCost:    &negative,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}
