package usecases

import "context"

// Transactor runs a function within a single database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateSparePartExecutor interface {
	Execute(ctx context.Context, cmd CreateSparePartCommand) (*CreateSparePartResult, error)
}

type StockInExecutor interface {
	Execute(ctx context.Context, cmd StockInCommand) (*StockInResult, error)
}

type StockOutExecutor interface {
	Execute(ctx context.Context, cmd StockOutCommand) (*StockOutResult, error)
}

type AdjustStockExecutor interface {
	Execute(ctx context.Context, cmd AdjustStockCommand) (*AdjustStockResult, error)
}

type ListSparePartsExecutor interface {
	Execute(ctx context.Context, query ListSparePartsQuery) (*ListSparePartsResult, error)
}
