package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/sparepart"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type CreateSparePartCommand struct {
	Code          string
	Name          string
	Specification string
	Category      string
	Unit          string
	Supplier      string
	SafetyStock   float64
	MinQuantity   float64
	MaxQuantity   float64
	UnitPrice     float64
	Location      string
}

type CreateSparePartResult struct {
	PartID    uint   `json:"part_id"`
	Code      string `json:"code"`
	CreatedAt string `json:"created_at"`
}

type CreateSparePartUseCase struct {
	partRepo sparepart.Repository
	logger   logger.Interface
	now      func() time.Time
}

func NewCreateSparePartUseCase(
	partRepo sparepart.Repository,
	logger logger.Interface,
) *CreateSparePartUseCase {
	return &CreateSparePartUseCase{
		partRepo: partRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *CreateSparePartUseCase) Execute(
	ctx context.Context,
	cmd CreateSparePartCommand,
) (*CreateSparePartResult, error) {
	uc.logger.Infow("executing create spare part use case", "code", cmd.Code)

	exists, err := uc.partRepo.ExistsByCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to check part code", "error", err)
		return nil, errors.NewInternalError("failed to check part code")
	}
	if exists {
		return nil, errors.NewConflictError("part code already exists")
	}

	part, err := sparepart.NewPart(
		cmd.Code, cmd.Name, cmd.Specification, cmd.Category, cmd.Unit, cmd.Supplier,
		cmd.SafetyStock, cmd.MinQuantity, cmd.MaxQuantity, cmd.UnitPrice,
		cmd.Location, uc.now(),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.partRepo.Save(ctx, part); err != nil {
		uc.logger.Errorw("failed to save spare part", "error", err)
		return nil, errors.NewInternalError("failed to save spare part")
	}

	uc.logger.Infow("spare part created successfully", "part_id", part.ID(), "code", part.Code())

	return &CreateSparePartResult{
		PartID:    part.ID(),
		Code:      part.Code(),
		CreatedAt: part.CreatedAt().Format(time.RFC3339),
	}, nil
}
