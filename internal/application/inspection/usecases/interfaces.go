package usecases

import "context"

type RecordInspectionExecutor interface {
	Execute(ctx context.Context, cmd RecordInspectionCommand) (*RecordInspectionResult, error)
}

type GetInspectionSummaryExecutor interface {
	Execute(ctx context.Context, query GetInspectionSummaryQuery) (*GetInspectionSummaryResult, error)
}
