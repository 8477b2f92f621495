package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/maintenance"
	"mantis/internal/shared/logger"
)

func TestEvaluatePlanUseCase_Execute_NeverGeneratedIsDue(t *testing.T) {
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Plan, error) {
			return newMonthlyPlan(t, id), nil
		},
	}

	uc := NewEvaluatePlanUseCase(planRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), EvaluatePlanQuery{PlanID: 7})
	require.NoError(t, err)
	assert.True(t, result.Due)
	assert.True(t, result.IsActive)
	assert.Nil(t, result.NextDueDate)
}

func TestEvaluatePlanUseCase_Execute_UsesSuppliedDate(t *testing.T) {
	lastGenerated := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Plan, error) {
			plan := newMonthlyPlan(t, id)
			plan.MarkGenerated(lastGenerated, nil, lastGenerated)
			return plan, nil
		},
	}

	uc := NewEvaluatePlanUseCase(planRepo, logger.NewNop())

	before := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	result, err := uc.Execute(context.Background(), EvaluatePlanQuery{PlanID: 7, Date: &before})
	require.NoError(t, err)
	assert.False(t, result.Due)
	require.NotNil(t, result.NextDueDate)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), *result.NextDueDate)

	onDue := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)
	result, err = uc.Execute(context.Background(), EvaluatePlanQuery{PlanID: 7, Date: &onDue})
	require.NoError(t, err)
	assert.True(t, result.Due)
}

func TestEvaluatePlanUseCase_Execute_HasNoSideEffects(t *testing.T) {
	plan := newMonthlyPlan(t, 7)
	planRepo := &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Plan, error) {
			return plan, nil
		},
		UpdateFunc: func(ctx context.Context, p *maintenance.Plan) error {
			t.Fatal("evaluation must not persist anything")
			return nil
		},
	}

	uc := NewEvaluatePlanUseCase(planRepo, logger.NewNop())

	_, err := uc.Execute(context.Background(), EvaluatePlanQuery{PlanID: 7})
	require.NoError(t, err)

	assert.Nil(t, plan.LastGeneratedDate())
	assert.Equal(t, 1, plan.Version())
}
