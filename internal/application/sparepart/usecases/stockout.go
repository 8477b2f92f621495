package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/sparepart"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type StockOutCommand struct {
	PartID      uint
	Quantity    float64
	WorkOrderID *uint
	Reason      string
	PerformedBy uint
}

type StockOutResult struct {
	PartID       uint    `json:"part_id"`
	Quantity     float64 `json:"quantity"`
	BelowMinimum bool    `json:"below_minimum"`
}

type StockOutUseCase struct {
	partRepo sparepart.Repository
	tx       Transactor
	logger   logger.Interface
	now      func() time.Time
}

func NewStockOutUseCase(
	partRepo sparepart.Repository,
	tx Transactor,
	logger logger.Interface,
) *StockOutUseCase {
	return &StockOutUseCase{
		partRepo: partRepo,
		tx:       tx,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *StockOutUseCase) Execute(
	ctx context.Context,
	cmd StockOutCommand,
) (*StockOutResult, error) {
	uc.logger.Infow("executing stock out use case",
		"part_id", cmd.PartID,
		"quantity", cmd.Quantity,
		"performed_by", cmd.PerformedBy)

	if cmd.PartID == 0 {
		return nil, errors.NewValidationError("part ID is required")
	}
	if cmd.PerformedBy == 0 {
		return nil, errors.NewValidationError("performed by ID is required")
	}

	part, err := uc.partRepo.FindByID(ctx, cmd.PartID)
	if err != nil {
		uc.logger.Errorw("failed to find spare part", "error", err, "part_id", cmd.PartID)
		return nil, errors.NewNotFoundError("spare part not found")
	}

	if err := part.StockOut(cmd.Quantity, cmd.WorkOrderID, cmd.Reason, cmd.PerformedBy, uc.now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.partRepo.Update(txCtx, part); err != nil {
			return err
		}
		return uc.partRepo.SaveMovements(txCtx, part.PendingMovements())
	})
	if err != nil {
		uc.logger.Errorw("failed to update spare part", "error", err, "part_id", part.ID())
		if errors.IsConflict(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update spare part")
	}
	part.ClearMovements()

	if part.IsBelowMinimum() {
		uc.logger.Warnw("spare part below minimum stock",
			"part_id", part.ID(),
			"code", part.Code(),
			"quantity", part.Quantity(),
			"min_quantity", part.MinQuantity())
	}

	return &StockOutResult{
		PartID:       part.ID(),
		Quantity:     part.Quantity(),
		BelowMinimum: part.IsBelowMinimum(),
	}, nil
}
