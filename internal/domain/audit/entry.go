// Package audit defines the append-only trail of who did what to
// which entity. Entries are written best-effort by an event
// subscriber and are never part of the originating transaction.
package audit

import (
	"fmt"
	"time"
)

// Action classifies an audited operation.
type Action string

const (
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionAssign      Action = "assign"
	ActionStart       Action = "start"
	ActionComplete    Action = "complete"
	ActionClose       Action = "close"
	ActionCancel      Action = "cancel"
	ActionGenerate    Action = "generate"
	ActionStockIn     Action = "stock_in"
	ActionStockOut    Action = "stock_out"
	ActionStockAdjust Action = "stock_adjust"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionAssign,
		ActionStart, ActionComplete, ActionClose, ActionCancel,
		ActionGenerate, ActionStockIn, ActionStockOut, ActionStockAdjust:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}

// Entry is one audit trail record. Snapshot holds a JSON rendering
// of the entity state after the action.
type Entry struct {
	id         uint
	actorID    uint
	action     Action
	entityType string
	entityID   string
	snapshot   string
	createdAt  time.Time
}

func NewEntry(actorID uint, action Action, entityType, entityID, snapshot string, now time.Time) (*Entry, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}

	return &Entry{
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		snapshot:   snapshot,
		createdAt:  now,
	}, nil
}

func ReconstructEntry(id, actorID uint, action Action, entityType, entityID, snapshot string, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}

	return &Entry{
		id:         id,
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		snapshot:   snapshot,
		createdAt:  createdAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) ActorID() uint        { return e.actorID }
func (e *Entry) Action() Action       { return e.action }
func (e *Entry) EntityType() string   { return e.entityType }
func (e *Entry) EntityID() string     { return e.entityID }
func (e *Entry) Snapshot() string     { return e.snapshot }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
