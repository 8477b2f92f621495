package usecases

import (
	"context"

	"mantis/internal/application/workorder/dto"
)

type CreateWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd CreateWorkOrderCommand) (*CreateWorkOrderResult, error)
}

type AssignWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd AssignWorkOrderCommand) (*AssignWorkOrderResult, error)
}

type StartWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd StartWorkOrderCommand) (*StartWorkOrderResult, error)
}

type CompleteWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd CompleteWorkOrderCommand) (*CompleteWorkOrderResult, error)
}

type CloseWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd CloseWorkOrderCommand) (*CloseWorkOrderResult, error)
}

type GetWorkOrderExecutor interface {
	Execute(ctx context.Context, query GetWorkOrderQuery) (*dto.WorkOrderDTO, error)
}

type ListWorkOrdersExecutor interface {
	Execute(ctx context.Context, query ListWorkOrdersQuery) (*ListWorkOrdersResult, error)
}

type GetWorkOrderStatsExecutor interface {
	Execute(ctx context.Context, query GetWorkOrderStatsQuery) (*GetWorkOrderStatsResult, error)
}

type ImportWorkOrdersExecutor interface {
	Execute(ctx context.Context, cmd ImportWorkOrdersCommand) (*ImportWorkOrdersResult, error)
}
