package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/sparepart"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type StockInCommand struct {
	PartID      uint
	Quantity    float64
	Reason      string
	PerformedBy uint
}

type StockInResult struct {
	PartID   uint    `json:"part_id"`
	Quantity float64 `json:"quantity"`
}

type StockInUseCase struct {
	partRepo sparepart.Repository
	tx       Transactor
	logger   logger.Interface
	now      func() time.Time
}

func NewStockInUseCase(
	partRepo sparepart.Repository,
	tx Transactor,
	logger logger.Interface,
) *StockInUseCase {
	return &StockInUseCase{
		partRepo: partRepo,
		tx:       tx,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *StockInUseCase) Execute(
	ctx context.Context,
	cmd StockInCommand,
) (*StockInResult, error) {
	uc.logger.Infow("executing stock in use case",
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

	if err := part.StockIn(cmd.Quantity, cmd.Reason, cmd.PerformedBy, uc.now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.updateWithLedger(ctx, part); err != nil {
		return nil, err
	}

	uc.logger.Infow("stock received", "part_id", part.ID(), "quantity", part.Quantity())

	return &StockInResult{PartID: part.ID(), Quantity: part.Quantity()}, nil
}

// updateWithLedger commits the new balance and its movement rows in one
// transaction so the ledger never drifts from the part quantity.
func (uc *StockInUseCase) updateWithLedger(ctx context.Context, part *sparepart.Part) error {
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.partRepo.Update(txCtx, part); err != nil {
			return err
		}
		return uc.partRepo.SaveMovements(txCtx, part.PendingMovements())
	})
	if err != nil {
		uc.logger.Errorw("failed to update spare part", "error", err, "part_id", part.ID())
		if errors.IsConflict(err) {
			return err
		}
		return errors.NewInternalError("failed to update spare part")
	}
	part.ClearMovements()
	return nil
}
