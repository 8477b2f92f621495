package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/maintenance"
	vo "mantis/internal/domain/maintenance/valueobjects"
	"mantis/internal/domain/shared/events"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

type TemplateItemInput struct {
	Item     string `json:"item"`
	Standard string `json:"standard,omitempty"`
}

type CreatePlanCommand struct {
	Code              string
	AssetID           uint
	Title             string
	Description       string
	TriggerType       string
	FrequencyValue    uint
	FrequencyUnit     string
	CounterName       string
	CounterThreshold  *float64
	ChecklistTemplate []TemplateItemInput
	EstimatedHours    *float64
	EstimatedCost     *float64
	RequiredSkills    string
	Priority          string
	CreatedBy         uint
}

type CreatePlanResult struct {
	PlanID    uint   `json:"plan_id"`
	Code      string `json:"code"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type CreatePlanUseCase struct {
	planRepo        maintenance.Repository
	assetRepo       asset.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
	now             func() time.Time
}

func NewCreatePlanUseCase(
	planRepo maintenance.Repository,
	assetRepo asset.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:        planRepo,
		assetRepo:       assetRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *CreatePlanUseCase) Execute(
	ctx context.Context,
	cmd CreatePlanCommand,
) (*CreatePlanResult, error) {
	uc.logger.Infow("executing create plan use case",
		"code", cmd.Code,
		"asset_id", cmd.AssetID,
		"trigger_type", cmd.TriggerType)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create plan command", "error", err)
		return nil, err
	}

	targetAsset, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		uc.logger.Errorw("failed to find asset", "error", err, "asset_id", cmd.AssetID)
		return nil, errors.NewNotFoundError("asset not found")
	}
	if !targetAsset.IsMaintainable() {
		return nil, errors.NewValidationError("asset is retired and cannot be planned")
	}

	if existing, err := uc.planRepo.GetByCode(ctx, cmd.Code); err == nil && existing != nil {
		return nil, errors.NewConflictError("plan code already exists")
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	now := uc.now()
	var plan *maintenance.Plan
	switch vo.TriggerType(cmd.TriggerType) {
	case vo.TriggerTime:
		plan, err = maintenance.NewTimePlan(
			cmd.Code, cmd.AssetID, cmd.Title, cmd.Description,
			cmd.FrequencyValue, vo.FrequencyUnit(cmd.FrequencyUnit),
			priority, cmd.CreatedBy, now,
		)
	case vo.TriggerCounter:
		if cmd.CounterThreshold == nil {
			return nil, errors.NewValidationError("counter threshold is required for counter plans")
		}
		plan, err = maintenance.NewCounterPlan(
			cmd.Code, cmd.AssetID, cmd.Title, cmd.Description,
			cmd.CounterName, *cmd.CounterThreshold,
			priority, cmd.CreatedBy, now,
		)
	default:
		return nil, errors.NewValidationError("invalid trigger type")
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.ChecklistTemplate) > 0 {
		items := make([]maintenance.TemplateItem, 0, len(cmd.ChecklistTemplate))
		for _, item := range cmd.ChecklistTemplate {
			items = append(items, maintenance.TemplateItem{Item: item.Item, Standard: item.Standard})
		}
		plan.SetChecklistTemplate(items)
	}
	plan.SetEstimates(cmd.EstimatedHours, cmd.EstimatedCost)
	plan.SetRequiredSkills(cmd.RequiredSkills)

	if err := uc.planRepo.Save(ctx, plan); err != nil {
		uc.logger.Errorw("failed to save plan", "error", err)
		return nil, errors.NewInternalError("failed to save maintenance plan")
	}

	if err := uc.eventDispatcher.Publish(maintenance.NewPlanCreatedEvent(plan.ID(), plan.Code(), cmd.CreatedBy, now)); err != nil {
		uc.logger.Warnw("failed to dispatch event", "error", err)
	}

	uc.logger.Infow("maintenance plan created successfully",
		"plan_id", plan.ID(),
		"code", plan.Code())

	return &CreatePlanResult{
		PlanID:    plan.ID(),
		Code:      plan.Code(),
		IsActive:  plan.IsActive(),
		CreatedAt: plan.CreatedAt().Format(time.RFC3339),
	}, nil
}

func (uc *CreatePlanUseCase) validateCommand(cmd CreatePlanCommand) error {
	if cmd.Code == "" {
		return errors.NewValidationError("plan code is required")
	}
	if cmd.AssetID == 0 {
		return errors.NewValidationError("asset ID is required")
	}
	if cmd.Title == "" {
		return errors.NewValidationError("title is required")
	}
	if cmd.CreatedBy == 0 {
		return errors.NewValidationError("created by ID is required")
	}
	if !vo.TriggerType(cmd.TriggerType).IsValid() {
		return errors.NewValidationError("invalid trigger type")
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
