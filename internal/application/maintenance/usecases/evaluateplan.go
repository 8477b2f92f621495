package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/maintenance"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type EvaluatePlanQuery struct {
	PlanID uint
	// Date defaults to the wall clock when nil.
	Date *time.Time
	// CurrentCounter is the present usage counter reading for
	// counter-triggered plans.
	CurrentCounter *float64
}

type EvaluatePlanResult struct {
	PlanID      uint       `json:"plan_id"`
	Due         bool       `json:"due"`
	IsActive    bool       `json:"is_active"`
	TriggerType string     `json:"trigger_type"`
	NextDueDate *time.Time `json:"next_due_date,omitempty"`
}

// EvaluatePlanUseCase runs the trigger check without side effects: it
// never advances the plan's generation bookkeeping.
type EvaluatePlanUseCase struct {
	planRepo maintenance.Repository
	logger   logger.Interface
	now      func() time.Time
}

func NewEvaluatePlanUseCase(
	planRepo maintenance.Repository,
	logger logger.Interface,
) *EvaluatePlanUseCase {
	return &EvaluatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *EvaluatePlanUseCase) Execute(
	ctx context.Context,
	query EvaluatePlanQuery,
) (*EvaluatePlanResult, error) {
	if query.PlanID == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}

	plan, err := uc.planRepo.GetByID(ctx, query.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to find plan", "error", err, "plan_id", query.PlanID)
		return nil, errors.NewNotFoundError("maintenance plan not found")
	}

	date := uc.now()
	if query.Date != nil {
		date = *query.Date
	}

	result := &EvaluatePlanResult{
		PlanID:      plan.ID(),
		Due:         plan.ShouldGenerate(date, query.CurrentCounter),
		IsActive:    plan.IsActive(),
		TriggerType: plan.TriggerType().String(),
	}
	if next, ok := plan.NextDueDate(); ok {
		result.NextDueDate = &next
	}

	return result, nil
}
