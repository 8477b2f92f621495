package usecases

import (
	"context"
	"fmt"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/constants"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

// ImportRow is one structured row of a bulk work order import.
type ImportRow struct {
	AssetCode   string
	Type        string
	Summary     string
	Description string
	Priority    string
}

type ImportWorkOrdersCommand struct {
	Rows        []ImportRow
	RequestedBy uint
}

// ImportWorkOrdersResult reports a partial-success outcome: rows are
// processed independently and failures never abort the batch. Error
// messages are capped; FailureCount remains the true total.
type ImportWorkOrdersResult struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Errors       []string `json:"errors,omitempty"`
}

type ImportWorkOrdersUseCase struct {
	workOrderRepo   workorder.Repository
	assetRepo       asset.Repository
	codeGenerator   workorder.CodeGenerator
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewImportWorkOrdersUseCase(
	workOrderRepo workorder.Repository,
	assetRepo asset.Repository,
	codeGenerator workorder.CodeGenerator,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ImportWorkOrdersUseCase {
	return &ImportWorkOrdersUseCase{
		workOrderRepo:   workOrderRepo,
		assetRepo:       assetRepo,
		codeGenerator:   codeGenerator,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *ImportWorkOrdersUseCase) Execute(
	ctx context.Context,
	cmd ImportWorkOrdersCommand,
) (*ImportWorkOrdersResult, error) {
	uc.logger.Infow("executing import work orders use case",
		"row_count", len(cmd.Rows),
		"requested_by", cmd.RequestedBy)

	if cmd.RequestedBy == 0 {
		return nil, errors.NewValidationError("requested by ID is required")
	}
	if len(cmd.Rows) == 0 {
		return nil, errors.NewValidationError("import contains no rows")
	}

	result := &ImportWorkOrdersResult{}

	for i, row := range cmd.Rows {
		if err := uc.importRow(ctx, row, cmd.RequestedBy); err != nil {
			result.FailureCount++
			if len(result.Errors) < constants.MaxImportErrorMessages {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", i+1, err.Error()))
			}
			continue
		}
		result.SuccessCount++
	}

	uc.logger.Infow("work order import finished",
		"success_count", result.SuccessCount,
		"failure_count", result.FailureCount)

	return result, nil
}

func (uc *ImportWorkOrdersUseCase) importRow(ctx context.Context, row ImportRow, requestedBy uint) error {
	if row.AssetCode == "" {
		return fmt.Errorf("asset code is required")
	}
	if row.Summary == "" {
		return fmt.Errorf("summary is required")
	}

	targetAsset, err := uc.assetRepo.GetByCode(ctx, row.AssetCode)
	if err != nil {
		return fmt.Errorf("asset %q not found", row.AssetCode)
	}
	if !targetAsset.IsMaintainable() {
		return fmt.Errorf("asset %q is retired", row.AssetCode)
	}

	woType := vo.Type(row.Type)
	if row.Type == "" {
		woType = vo.TypeCM
	} else if !woType.IsValid() {
		return fmt.Errorf("invalid work order type %q", row.Type)
	}

	priority := vo.Priority(row.Priority)
	if row.Priority == "" {
		priority = vo.PriorityMedium
	} else if !priority.IsValid() {
		return fmt.Errorf("invalid priority %q", row.Priority)
	}

	now := uc.now()
	wo, err := workorder.NewWorkOrder(targetAsset.ID(), woType, row.Summary, row.Description, priority, requestedBy, now)
	if err != nil {
		return err
	}

	code, err := uc.codeGenerator.NextCode(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	if err := wo.SetCode(code); err != nil {
		return err
	}

	if err := uc.workOrderRepo.Save(ctx, wo); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	if err := uc.eventDispatcher.Publish(workorder.NewCreatedEvent(wo.ID(), wo.Code(), requestedBy, now)); err != nil {
		uc.logger.Warnw("failed to dispatch event", "error", err)
	}

	return nil
}
