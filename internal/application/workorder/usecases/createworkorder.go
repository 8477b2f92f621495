package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type ChecklistItemInput struct {
	Item     string `json:"item"`
	Standard string `json:"standard,omitempty"`
}

type CreateWorkOrderCommand struct {
	AssetID      uint
	Type         string
	Summary      string
	Description  string
	Priority     string
	RequestedBy  uint
	Checklist    []ChecklistItemInput
	PlannedStart *time.Time
	PlannedEnd   *time.Time
}

type CreateWorkOrderResult struct {
	WorkOrderID uint   `json:"work_order_id"`
	Code        string `json:"code"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type CreateWorkOrderUseCase struct {
	workOrderRepo   workorder.Repository
	assetRepo       asset.Repository
	codeGenerator   workorder.CodeGenerator
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewCreateWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	assetRepo asset.Repository,
	codeGenerator workorder.CodeGenerator,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateWorkOrderUseCase {
	return &CreateWorkOrderUseCase{
		workOrderRepo:   workOrderRepo,
		assetRepo:       assetRepo,
		codeGenerator:   codeGenerator,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *CreateWorkOrderUseCase) Execute(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
) (*CreateWorkOrderResult, error) {
	uc.logger.Infow("executing create work order use case",
		"asset_id", cmd.AssetID,
		"type", cmd.Type,
		"requested_by", cmd.RequestedBy)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create work order command", "error", err)
		return nil, err
	}

	woType := vo.Type(cmd.Type)
	if cmd.Type == "" {
		woType = vo.TypeCM
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	targetAsset, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		uc.logger.Errorw("failed to find asset", "error", err, "asset_id", cmd.AssetID)
		return nil, errors.NewNotFoundError("asset not found")
	}

	if !targetAsset.IsMaintainable() {
		return nil, errors.NewValidationError("asset is retired and cannot receive work orders")
	}

	now := uc.now()
	wo, err := workorder.NewWorkOrder(cmd.AssetID, woType, cmd.Summary, cmd.Description, priority, cmd.RequestedBy, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.Checklist) > 0 {
		items := make([]workorder.ChecklistItem, 0, len(cmd.Checklist))
		for _, item := range cmd.Checklist {
			items = append(items, workorder.ChecklistItem{Item: item.Item, Standard: item.Standard})
		}
		wo.SetChecklist(items)
	}
	wo.SetPlannedWindow(cmd.PlannedStart, cmd.PlannedEnd)

	code, err := uc.codeGenerator.NextCode(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate work order code", "error", err)
		return nil, errors.NewInternalError("failed to generate work order code")
	}
	if err := wo.SetCode(code); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.workOrderRepo.Save(ctx, wo); err != nil {
		uc.logger.Errorw("failed to save work order", "error", err)
		return nil, errors.NewInternalError("failed to save work order")
	}

	if err := uc.eventDispatcher.Publish(workorder.NewCreatedEvent(wo.ID(), wo.Code(), cmd.RequestedBy, now)); err != nil {
		uc.logger.Warnw("failed to dispatch event", "error", err)
	}

	uc.logger.Infow("work order created successfully",
		"work_order_id", wo.ID(),
		"code", wo.Code())

	return &CreateWorkOrderResult{
		WorkOrderID: wo.ID(),
		Code:        wo.Code(),
		Status:      wo.Status().String(),
		CreatedAt:   wo.CreatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *CreateWorkOrderUseCase) validateCommand(cmd CreateWorkOrderCommand) error {
	if cmd.AssetID == 0 {
		return errors.NewValidationError("asset ID is required")
	}
	if cmd.Summary == "" {
		return errors.NewValidationError("summary is required")
	}
	if cmd.RequestedBy == 0 {
		return errors.NewValidationError("requested by ID is required")
	}
	if cmd.Type != "" && !vo.Type(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid work order type")
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
