package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/sparepart"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type AdjustStockCommand struct {
	PartID      uint
	NewQuantity float64
	Reason      string
	PerformedBy uint
}

type AdjustStockResult struct {
	PartID   uint    `json:"part_id"`
	Quantity float64 `json:"quantity"`
}

type AdjustStockUseCase struct {
	partRepo sparepart.Repository
	tx       Transactor
	logger   logger.Interface
	now      func() time.Time
}

func NewAdjustStockUseCase(
	partRepo sparepart.Repository,
	tx Transactor,
	logger logger.Interface,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		partRepo: partRepo,
		tx:       tx,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *AdjustStockUseCase) Execute(
	ctx context.Context,
	cmd AdjustStockCommand,
) (*AdjustStockResult, error) {
	uc.logger.Infow("executing adjust stock use case",
		"part_id", cmd.PartID,
		"new_quantity", cmd.NewQuantity,
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

	if err := part.AdjustStock(cmd.NewQuantity, cmd.Reason, cmd.PerformedBy, uc.now()); err != nil {
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

	uc.logger.Infow("stock adjusted", "part_id", part.ID(), "quantity", part.Quantity())

	return &AdjustStockResult{PartID: part.ID(), Quantity: part.Quantity()}, nil
}
