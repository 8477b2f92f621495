package services

import (
	"context"
	"encoding/json"

	"mantis/internal/domain/audit"
	"mantis/internal/domain/maintenance"
	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/workorder"
	"mantis/internal/shared/biztime"
	"mantis/internal/shared/logger"
)

// AuditRecorder subscribes to domain events and appends an audit entry per
// event. Recording is best-effort: failures are logged and never propagate
// back to the dispatcher, so the audit trail can never fail a business
// operation that already committed.
type AuditRecorder struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewAuditRecorder(auditRepo audit.Repository, logger logger.Interface) *AuditRecorder {
	return &AuditRecorder{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// RegisterHandlers subscribes the recorder to every audited event type.
func (r *AuditRecorder) RegisterHandlers(dispatcher events.EventDispatcher) error {
	for _, eventType := range []string{
		workorder.EventTypeCreated,
		workorder.EventTypeAssigned,
		workorder.EventTypeStarted,
		workorder.EventTypeCompleted,
		workorder.EventTypeClosed,
		workorder.EventTypeGenerated,
		maintenance.EventTypePlanCreated,
		maintenance.EventTypePlanActivated,
		maintenance.EventTypePlanDeactivated,
	} {
		if err := dispatcher.Subscribe(eventType, r); err != nil {
			return err
		}
	}
	return nil
}

// CanHandle reports whether the event type maps to an audit action.
func (r *AuditRecorder) CanHandle(eventType string) bool {
	_, _, ok := classify(eventType)
	return ok
}

// Handle appends one audit entry for the event. It always returns nil.
func (r *AuditRecorder) Handle(event events.DomainEvent) error {
	action, entityType, ok := classify(event.GetEventType())
	if !ok {
		return nil
	}

	snapshot, err := json.Marshal(event)
	if err != nil {
		r.logger.Warnw("failed to marshal event for audit trail",
			"event_type", event.GetEventType(),
			"error", err)
		snapshot = nil
	}

	entry, err := audit.NewEntry(
		actorOf(event),
		action,
		entityType,
		event.GetAggregateID(),
		string(snapshot),
		biztime.NowUTC(),
	)
	if err != nil {
		r.logger.Warnw("failed to build audit entry",
			"event_type", event.GetEventType(),
			"error", err)
		return nil
	}

	if err := r.auditRepo.Append(context.Background(), entry); err != nil {
		r.logger.Errorw("failed to append audit entry",
			"event_type", event.GetEventType(),
			"entity_id", event.GetAggregateID(),
			"error", err)
	}

	return nil
}

func classify(eventType string) (audit.Action, string, bool) {
	switch eventType {
	case workorder.EventTypeCreated:
		return audit.ActionCreate, "work_order", true
	case workorder.EventTypeAssigned:
		return audit.ActionAssign, "work_order", true
	case workorder.EventTypeStarted:
		return audit.ActionStart, "work_order", true
	case workorder.EventTypeCompleted:
		return audit.ActionComplete, "work_order", true
	case workorder.EventTypeClosed:
		return audit.ActionClose, "work_order", true
	case workorder.EventTypeGenerated:
		return audit.ActionGenerate, "work_order", true
	case maintenance.EventTypePlanCreated:
		return audit.ActionCreate, "plan", true
	case maintenance.EventTypePlanActivated, maintenance.EventTypePlanDeactivated:
		return audit.ActionUpdate, "plan", true
	}
	return "", "", false
}

// actorOf extracts the acting user from the concrete event, falling back to
// zero (system) when the event carries no actor.
func actorOf(event events.DomainEvent) uint {
	switch e := event.(type) {
	case workorder.CreatedEvent:
		return e.RequestedBy
	case workorder.AssignedEvent:
		return e.AssignedBy
	case workorder.StartedEvent:
		return e.StartedBy
	case workorder.CompletedEvent:
		return e.CompletedBy
	case workorder.ClosedEvent:
		return e.ClosedBy
	case workorder.GeneratedEvent:
		return e.GeneratedBy
	case maintenance.PlanCreatedEvent:
		return e.CreatedBy
	}
	return 0
}
