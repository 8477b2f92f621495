package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/maintenance"
	mvo "mantis/internal/domain/maintenance/valueobjects"
	"mantis/internal/domain/workorder"
	wovo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

func newMonthlyPlan(t *testing.T, id uint) *maintenance.Plan {
	t.Helper()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	plan, err := maintenance.ReconstructPlan(
		id, "PM-LATHE-01", 5, "Monthly lubrication", "Grease all fittings",
		mvo.TriggerTime, 1, mvo.UnitMonth,
		"", nil,
		[]maintenance.TemplateItem{
			{Item: "Grease spindle", Standard: "2 shots"},
			{Item: "Check oil level", Standard: "between marks"},
		},
		nil, nil, "",
		mvo.PriorityHigh, true,
		nil, nil,
		2, 1, created, created,
	)
	require.NoError(t, err)
	return plan
}

func TestGenerateWorkOrderUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	var savedWO *workorder.WorkOrder
	var updatedPlan *maintenance.Plan
	planSaveOrder := []string{}

	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Plan, error) {
			return newMonthlyPlan(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, plan *maintenance.Plan) error {
			planSaveOrder = append(planSaveOrder, "plan")
			updatedPlan = plan
			return nil
		},
	}
	workOrderRepo := &mockWorkOrderRepository{
		SaveFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			planSaveOrder = append(planSaveOrder, "workorder")
			savedWO = wo
			return wo.SetID(42)
		},
	}
	dispatcher := &mockEventDispatcher{}

	uc := NewGenerateWorkOrderUseCase(planRepo, workOrderRepo, &mockCodeGenerator{}, dispatcher, logger.NewNop())
	uc.now = func() time.Time { return now }

	result, err := uc.Execute(context.Background(), GenerateWorkOrderCommand{
		PlanID:      7,
		GeneratedBy: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.WorkOrderID)
	assert.Equal(t, "open", result.Status)

	require.NotNil(t, savedWO)
	assert.Equal(t, wovo.TypePM, savedWO.Type())
	assert.Equal(t, wovo.StatusOpen, savedWO.Status())
	assert.Equal(t, wovo.PriorityHigh, savedWO.Priority())
	require.NotNil(t, savedWO.PlanID())
	assert.Equal(t, uint(7), *savedWO.PlanID())

	checklist := savedWO.Checklist()
	require.Len(t, checklist, 2)
	assert.Equal(t, "Grease spindle", checklist[0].Item)
	assert.Equal(t, "2 shots", checklist[0].Standard)
	assert.Empty(t, checklist[0].Result)

	// the work order is persisted before the plan advances
	assert.Equal(t, []string{"workorder", "plan"}, planSaveOrder)
	require.NotNil(t, updatedPlan)
	require.NotNil(t, updatedPlan.LastGeneratedDate())
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *updatedPlan.LastGeneratedDate())

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, workorder.EventTypeGenerated, dispatcher.published[0].GetEventType())
}

func TestGenerateWorkOrderUseCase_Execute_InactivePlan(t *testing.T) {
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Plan, error) {
			plan := newMonthlyPlan(t, id)
			plan.Deactivate(time.Now())
			plan.ClearEvents()
			return plan, nil
		},
	}
	workOrderRepo := &mockWorkOrderRepository{
		SaveFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			t.Fatal("no work order may be saved from an inactive plan")
			return nil
		},
	}

	uc := NewGenerateWorkOrderUseCase(planRepo, workOrderRepo, &mockCodeGenerator{}, &mockEventDispatcher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateWorkOrderCommand{PlanID: 7, GeneratedBy: 3})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestGenerateWorkOrderUseCase_Execute_SaveFailureLeavesPlanUntouched(t *testing.T) {
	planUpdated := false
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Plan, error) {
			return newMonthlyPlan(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, plan *maintenance.Plan) error {
			planUpdated = true
			return nil
		},
	}
	workOrderRepo := &mockWorkOrderRepository{
		SaveFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			return errors.NewInternalError("db down")
		},
	}
	dispatcher := &mockEventDispatcher{}

	uc := NewGenerateWorkOrderUseCase(planRepo, workOrderRepo, &mockCodeGenerator{}, dispatcher, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateWorkOrderCommand{PlanID: 7, GeneratedBy: 3})
	require.Error(t, err)

	assert.False(t, planUpdated, "plan bookkeeping must not advance when the save fails")
	assert.Empty(t, dispatcher.published)
}

func TestGenerateWorkOrderUseCase_Execute_RecordsCounterReading(t *testing.T) {
	var updatedPlan *maintenance.Plan
	threshold := 500.0
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Plan, error) {
			plan, err := maintenance.ReconstructPlan(
				id, "PM-COMP-01", 5, "Compressor service", "",
				mvo.TriggerCounter, 0, "",
				"run_hours", &threshold,
				nil, nil, nil, "",
				mvo.PriorityMedium, true,
				nil, nil,
				2, 1, created, created,
			)
			require.NoError(t, err)
			return plan, nil
		},
		UpdateFunc: func(ctx context.Context, plan *maintenance.Plan) error {
			updatedPlan = plan
			return nil
		},
	}
	workOrderRepo := &mockWorkOrderRepository{
		SaveFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			return wo.SetID(43)
		},
	}

	uc := NewGenerateWorkOrderUseCase(planRepo, workOrderRepo, &mockCodeGenerator{}, &mockEventDispatcher{}, logger.NewNop())

	reading := 1712.5
	_, err := uc.Execute(context.Background(), GenerateWorkOrderCommand{
		PlanID:         7,
		GeneratedBy:    3,
		CurrentCounter: &reading,
	})
	require.NoError(t, err)

	require.NotNil(t, updatedPlan)
	require.NotNil(t, updatedPlan.LastCounterValue())
	assert.Equal(t, reading, *updatedPlan.LastCounterValue())
}
