package maintenance

import (
	"fmt"
	"time"

	"mantis/internal/domain/shared/events"
)

const (
	EventTypePlanCreated     = "plan.created"
	EventTypePlanActivated   = "plan.activated"
	EventTypePlanDeactivated = "plan.deactivated"
)

type PlanCreatedEvent struct {
	events.BaseEvent
	PlanID    uint
	Code      string
	CreatedBy uint
}

func NewPlanCreatedEvent(planID uint, code string, createdBy uint, occurredAt time.Time) PlanCreatedEvent {
	return PlanCreatedEvent{
		BaseEvent: basePlanEvent(EventTypePlanCreated, planID, occurredAt),
		PlanID:    planID,
		Code:      code,
		CreatedBy: createdBy,
	}
}

type PlanActivatedEvent struct {
	events.BaseEvent
	PlanID uint
	Code   string
}

func NewPlanActivatedEvent(planID uint, code string, occurredAt time.Time) PlanActivatedEvent {
	return PlanActivatedEvent{
		BaseEvent: basePlanEvent(EventTypePlanActivated, planID, occurredAt),
		PlanID:    planID,
		Code:      code,
	}
}

type PlanDeactivatedEvent struct {
	events.BaseEvent
	PlanID uint
	Code   string
}

func NewPlanDeactivatedEvent(planID uint, code string, occurredAt time.Time) PlanDeactivatedEvent {
	return PlanDeactivatedEvent{
		BaseEvent: basePlanEvent(EventTypePlanDeactivated, planID, occurredAt),
		PlanID:    planID,
		Code:      code,
	}
}

func basePlanEvent(eventType string, planID uint, occurredAt time.Time) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: fmt.Sprintf("%d", planID),
		EventType:   eventType,
		OccurredAt:  occurredAt,
	}
}
