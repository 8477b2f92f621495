package workorder

import (
	"fmt"
	"time"

	"mantis/internal/domain/shared/events"
)

const (
	EventTypeCreated   = "workorder.created"
	EventTypeAssigned  = "workorder.assigned"
	EventTypeStarted   = "workorder.started"
	EventTypeCompleted = "workorder.completed"
	EventTypeClosed    = "workorder.closed"
	EventTypeGenerated = "workorder.generated"
)

type CreatedEvent struct {
	events.BaseEvent
	WorkOrderID uint
	Code        string
	RequestedBy uint
}

func NewCreatedEvent(workOrderID uint, code string, requestedBy uint, occurredAt time.Time) CreatedEvent {
	return CreatedEvent{
		BaseEvent:   baseEvent(EventTypeCreated, workOrderID, occurredAt),
		WorkOrderID: workOrderID,
		Code:        code,
		RequestedBy: requestedBy,
	}
}

type AssignedEvent struct {
	events.BaseEvent
	WorkOrderID uint
	Code        string
	AssigneeID  uint
	AssignedBy  uint
}

func NewAssignedEvent(workOrderID uint, code string, assigneeID, assignedBy uint, occurredAt time.Time) AssignedEvent {
	return AssignedEvent{
		BaseEvent:   baseEvent(EventTypeAssigned, workOrderID, occurredAt),
		WorkOrderID: workOrderID,
		Code:        code,
		AssigneeID:  assigneeID,
		AssignedBy:  assignedBy,
	}
}

type StartedEvent struct {
	events.BaseEvent
	WorkOrderID uint
	Code        string
	StartedBy   uint
}

func NewStartedEvent(workOrderID uint, code string, startedBy uint, occurredAt time.Time) StartedEvent {
	return StartedEvent{
		BaseEvent:   baseEvent(EventTypeStarted, workOrderID, occurredAt),
		WorkOrderID: workOrderID,
		Code:        code,
		StartedBy:   startedBy,
	}
}

type CompletedEvent struct {
	events.BaseEvent
	WorkOrderID uint
	Code        string
	CompletedBy uint
}

func NewCompletedEvent(workOrderID uint, code string, completedBy uint, occurredAt time.Time) CompletedEvent {
	return CompletedEvent{
		BaseEvent:   baseEvent(EventTypeCompleted, workOrderID, occurredAt),
		WorkOrderID: workOrderID,
		Code:        code,
		CompletedBy: completedBy,
	}
}

type ClosedEvent struct {
	events.BaseEvent
	WorkOrderID uint
	Code        string
	ClosedBy    uint
}

func NewClosedEvent(workOrderID uint, code string, closedBy uint, occurredAt time.Time) ClosedEvent {
	return ClosedEvent{
		BaseEvent:   baseEvent(EventTypeClosed, workOrderID, occurredAt),
		WorkOrderID: workOrderID,
		Code:        code,
		ClosedBy:    closedBy,
	}
}

// GeneratedEvent marks a work order produced from a maintenance plan.
type GeneratedEvent struct {
	events.BaseEvent
	WorkOrderID uint
	Code        string
	PlanID      uint
	GeneratedBy uint
}

func NewGeneratedEvent(workOrderID uint, code string, planID, generatedBy uint, occurredAt time.Time) GeneratedEvent {
	return GeneratedEvent{
		BaseEvent:   baseEvent(EventTypeGenerated, workOrderID, occurredAt),
		WorkOrderID: workOrderID,
		Code:        code,
		PlanID:      planID,
		GeneratedBy: generatedBy,
	}
}

func baseEvent(eventType string, workOrderID uint, occurredAt time.Time) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: fmt.Sprintf("%d", workOrderID),
		EventType:   eventType,
		OccurredAt:  occurredAt,
	}
}
