package usecases

import (
	"context"

	"mantis/internal/application/maintenance/dto"
)

type CreatePlanExecutor interface {
	Execute(ctx context.Context, cmd CreatePlanCommand) (*CreatePlanResult, error)
}

type GetPlanExecutor interface {
	Execute(ctx context.Context, query GetPlanQuery) (*dto.PlanDTO, error)
}

type ListPlansExecutor interface {
	Execute(ctx context.Context, query ListPlansQuery) (*ListPlansResult, error)
}

type ActivatePlanExecutor interface {
	Execute(ctx context.Context, cmd ActivatePlanCommand) (*ActivatePlanResult, error)
}

type DeactivatePlanExecutor interface {
	Execute(ctx context.Context, cmd DeactivatePlanCommand) (*DeactivatePlanResult, error)
}

type EvaluatePlanExecutor interface {
	Execute(ctx context.Context, query EvaluatePlanQuery) (*EvaluatePlanResult, error)
}

type GenerateWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd GenerateWorkOrderCommand) (*GenerateWorkOrderResult, error)
}
