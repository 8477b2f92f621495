package workorder

import (
	"fmt"
	"time"

	"mantis/internal/domain/shared/events"
	vo "mantis/internal/domain/workorder/valueobjects"
)

// ChecklistItem is one entry of a work order checklist. For PM orders the
// items are copied from the originating plan's template.
type ChecklistItem struct {
	Item     string `json:"item"`
	Standard string `json:"standard,omitempty"`
	Result   string `json:"result,omitempty"`
}

// CompletionDetails carries the optional fields a technician may report when
// completing a work order. Nil pointers leave the existing value untouched.
type CompletionDetails struct {
	ActionsTaken    string
	RootCause       *string
	FailureCode     *string
	DowntimeMinutes *uint
	LaborHours      *float64
	PartsCost       *float64
	Notes           *string
}

// WorkOrder is one unit of maintenance work against one asset. Its status
// follows a fixed transition table; every transition stamps actor and time
// attribution and is all-or-nothing.
type WorkOrder struct {
	id              uint
	code            string
	assetID         uint
	woType          vo.Type
	status          vo.Status
	summary         string
	description     string
	priority        vo.Priority
	requestedBy     uint
	assigneeID      *uint
	assignedBy      *uint
	assignedAt      *time.Time
	planID          *uint
	plannedStart    *time.Time
	plannedEnd      *time.Time
	actualStart     *time.Time
	actualEnd       *time.Time
	failureCode     string
	rootCause       string
	actionsTaken    string
	checklist       []ChecklistItem
	downtimeMinutes uint
	laborHours      float64
	partsCost       float64
	totalCost       float64
	completedBy     *uint
	completedAt     *time.Time
	closedBy        *uint
	closedAt        *time.Time
	notes           string
	version         int
	createdAt       time.Time
	updatedAt       time.Time

	pendingEvents []events.DomainEvent
}

// NewWorkOrder creates a work order in the open state. The code may be empty;
// callers assign one via SetCode before saving when it is.
func NewWorkOrder(
	assetID uint,
	woType vo.Type,
	summary string,
	description string,
	priority vo.Priority,
	requestedBy uint,
	now time.Time,
) (*WorkOrder, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !woType.IsValid() {
		return nil, fmt.Errorf("invalid work order type")
	}
	if len(summary) == 0 {
		return nil, fmt.Errorf("summary is required")
	}
	if len(summary) > 200 {
		return nil, fmt.Errorf("summary exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requestedBy == 0 {
		return nil, fmt.Errorf("requested by ID is required")
	}

	wo := &WorkOrder{
		assetID:     assetID,
		woType:      woType,
		status:      vo.StatusOpen,
		summary:     summary,
		description: description,
		priority:    priority,
		requestedBy: requestedBy,
		checklist:   []ChecklistItem{},
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}
	wo.recalcTotalCost()

	return wo, nil
}

// ReconstructWorkOrder rebuilds a work order from persisted state.
func ReconstructWorkOrder(
	id uint,
	code string,
	assetID uint,
	woType vo.Type,
	status vo.Status,
	summary string,
	description string,
	priority vo.Priority,
	requestedBy uint,
	assigneeID, assignedBy *uint,
	assignedAt *time.Time,
	planID *uint,
	plannedStart, plannedEnd, actualStart, actualEnd *time.Time,
	failureCode, rootCause, actionsTaken string,
	checklist []ChecklistItem,
	downtimeMinutes uint,
	laborHours, partsCost, totalCost float64,
	completedBy *uint,
	completedAt *time.Time,
	closedBy *uint,
	closedAt *time.Time,
	notes string,
	version int,
	createdAt, updatedAt time.Time,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("work order code is required")
	}
	if !woType.IsValid() {
		return nil, fmt.Errorf("invalid work order type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid work order status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if checklist == nil {
		checklist = []ChecklistItem{}
	}

	return &WorkOrder{
		id:              id,
		code:            code,
		assetID:         assetID,
		woType:          woType,
		status:          status,
		summary:         summary,
		description:     description,
		priority:        priority,
		requestedBy:     requestedBy,
		assigneeID:      assigneeID,
		assignedBy:      assignedBy,
		assignedAt:      assignedAt,
		planID:          planID,
		plannedStart:    plannedStart,
		plannedEnd:      plannedEnd,
		actualStart:     actualStart,
		actualEnd:       actualEnd,
		failureCode:     failureCode,
		rootCause:       rootCause,
		actionsTaken:    actionsTaken,
		checklist:       checklist,
		downtimeMinutes: downtimeMinutes,
		laborHours:      laborHours,
		partsCost:       partsCost,
		totalCost:       totalCost,
		completedBy:     completedBy,
		completedAt:     completedAt,
		closedBy:        closedBy,
		closedAt:        closedAt,
		notes:           notes,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (w *WorkOrder) ID() uint                   { return w.id }
func (w *WorkOrder) Code() string               { return w.code }
func (w *WorkOrder) AssetID() uint              { return w.assetID }
func (w *WorkOrder) Type() vo.Type              { return w.woType }
func (w *WorkOrder) Status() vo.Status          { return w.status }
func (w *WorkOrder) Summary() string            { return w.summary }
func (w *WorkOrder) Description() string        { return w.description }
func (w *WorkOrder) Priority() vo.Priority      { return w.priority }
func (w *WorkOrder) RequestedBy() uint          { return w.requestedBy }
func (w *WorkOrder) AssigneeID() *uint          { return w.assigneeID }
func (w *WorkOrder) AssignedBy() *uint          { return w.assignedBy }
func (w *WorkOrder) AssignedAt() *time.Time     { return w.assignedAt }
func (w *WorkOrder) PlanID() *uint              { return w.planID }
func (w *WorkOrder) PlannedStart() *time.Time   { return w.plannedStart }
func (w *WorkOrder) PlannedEnd() *time.Time     { return w.plannedEnd }
func (w *WorkOrder) ActualStart() *time.Time    { return w.actualStart }
func (w *WorkOrder) ActualEnd() *time.Time      { return w.actualEnd }
func (w *WorkOrder) FailureCode() string        { return w.failureCode }
func (w *WorkOrder) RootCause() string          { return w.rootCause }
func (w *WorkOrder) ActionsTaken() string       { return w.actionsTaken }
func (w *WorkOrder) DowntimeMinutes() uint      { return w.downtimeMinutes }
func (w *WorkOrder) LaborHours() float64        { return w.laborHours }
func (w *WorkOrder) PartsCost() float64         { return w.partsCost }
func (w *WorkOrder) TotalCost() float64         { return w.totalCost }
func (w *WorkOrder) CompletedBy() *uint         { return w.completedBy }
func (w *WorkOrder) CompletedAt() *time.Time    { return w.completedAt }
func (w *WorkOrder) ClosedBy() *uint            { return w.closedBy }
func (w *WorkOrder) ClosedAt() *time.Time       { return w.closedAt }
func (w *WorkOrder) Notes() string              { return w.notes }
func (w *WorkOrder) Version() int               { return w.version }
func (w *WorkOrder) CreatedAt() time.Time       { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time       { return w.updatedAt }

func (w *WorkOrder) Checklist() []ChecklistItem {
	items := make([]ChecklistItem, len(w.checklist))
	copy(items, w.checklist)
	return items
}

func (w *WorkOrder) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	w.id = id
	return nil
}

func (w *WorkOrder) SetCode(code string) error {
	if len(w.code) > 0 {
		return fmt.Errorf("work order code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("work order code cannot be empty")
	}
	w.code = code
	return nil
}

// SetChecklist replaces the checklist, typically with items copied from a
// maintenance plan template.
func (w *WorkOrder) SetChecklist(items []ChecklistItem) {
	if items == nil {
		items = []ChecklistItem{}
	}
	w.checklist = items
}

// SetPlanLink records the originating maintenance plan of a PM order.
func (w *WorkOrder) SetPlanLink(planID uint) error {
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	w.planID = &planID
	return nil
}

func (w *WorkOrder) SetPlannedWindow(start, end *time.Time) {
	w.plannedStart = start
	w.plannedEnd = end
}

// Assign moves an open work order to assigned, stamping assignee and actor.
// Orders that already carry an assignee cannot be re-assigned; the order
// would have to be a fresh open one.
func (w *WorkOrder) Assign(assigneeID, assignedBy uint, now time.Time) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if assignedBy == 0 {
		return fmt.Errorf("assigned by ID cannot be zero")
	}
	if !w.status.CanBeAssigned() {
		return fmt.Errorf("work order cannot be assigned in current status: %s", w.status)
	}

	w.status = vo.StatusAssigned
	w.assigneeID = &assigneeID
	w.assignedBy = &assignedBy
	w.assignedAt = &now
	w.touch(now)

	w.record(NewAssignedEvent(w.id, w.code, assigneeID, assignedBy, now))

	return nil
}

// Start moves an open or assigned work order to in progress.
func (w *WorkOrder) Start(startedBy uint, now time.Time) error {
	if !w.status.CanBeStarted() {
		return fmt.Errorf("work order cannot be started in current status: %s", w.status)
	}

	w.status = vo.StatusInProgress
	w.actualStart = &now
	w.touch(now)

	w.record(NewStartedEvent(w.id, w.code, startedBy, now))

	return nil
}

// Complete moves an in-progress work order to completed. Optional completion
// details are applied first; the transition is rejected before any mutation
// when the resulting actions taken would be empty.
func (w *WorkOrder) Complete(details CompletionDetails, completedBy uint, now time.Time) error {
	if completedBy == 0 {
		return fmt.Errorf("completed by ID cannot be zero")
	}
	if !w.status.CanBeCompleted() {
		return fmt.Errorf("work order cannot be completed in current status: %s", w.status)
	}

	resultingActions := w.actionsTaken
	if len(details.ActionsTaken) > 0 {
		resultingActions = details.ActionsTaken
	}
	if len(resultingActions) == 0 {
		return fmt.Errorf("actions taken is required to complete a work order")
	}

	w.actionsTaken = resultingActions
	if details.RootCause != nil {
		w.rootCause = *details.RootCause
	}
	if details.FailureCode != nil {
		w.failureCode = *details.FailureCode
	}
	if details.DowntimeMinutes != nil {
		w.downtimeMinutes = *details.DowntimeMinutes
	}
	if details.LaborHours != nil {
		w.laborHours = *details.LaborHours
	}
	if details.PartsCost != nil {
		w.partsCost = *details.PartsCost
	}
	if details.Notes != nil {
		w.notes = *details.Notes
	}

	w.status = vo.StatusCompleted
	w.actualEnd = &now
	w.completedBy = &completedBy
	w.completedAt = &now
	w.touch(now)

	w.record(NewCompletedEvent(w.id, w.code, completedBy, now))

	return nil
}

// CloseOut moves a completed work order to closed.
func (w *WorkOrder) CloseOut(closedBy uint, now time.Time) error {
	if closedBy == 0 {
		return fmt.Errorf("closed by ID cannot be zero")
	}
	if !w.status.CanBeClosed() {
		return fmt.Errorf("work order cannot be closed in current status: %s", w.status)
	}

	w.status = vo.StatusClosed
	w.closedBy = &closedBy
	w.closedAt = &now
	w.touch(now)

	w.record(NewClosedEvent(w.id, w.code, closedBy, now))

	return nil
}

// DurationHours returns the actual working duration, zero when the order has
// not both started and ended.
func (w *WorkOrder) DurationHours() float64 {
	if w.actualStart == nil || w.actualEnd == nil {
		return 0
	}
	return w.actualEnd.Sub(*w.actualStart).Hours()
}

// IsOverdue reports whether an unfinished order has passed its planned end.
func (w *WorkOrder) IsOverdue(now time.Time) bool {
	if w.plannedEnd == nil {
		return false
	}
	if w.status == vo.StatusCompleted || w.status.IsTerminal() {
		return false
	}
	return now.After(*w.plannedEnd)
}

// Snapshot returns a short human-readable representation for audit records.
func (w *WorkOrder) Snapshot() string {
	return fmt.Sprintf("%s - %s", w.code, w.summary)
}

// GetEvents returns the domain events recorded since the last clear.
func (w *WorkOrder) GetEvents() []events.DomainEvent {
	evts := make([]events.DomainEvent, len(w.pendingEvents))
	copy(evts, w.pendingEvents)
	return evts
}

// ClearEvents discards recorded events after dispatch.
func (w *WorkOrder) ClearEvents() {
	w.pendingEvents = nil
}

// touch applies the universal save post-conditions: bump version, refresh
// update timestamp and recompute the cost rollup.
func (w *WorkOrder) touch(now time.Time) {
	w.version++
	w.updatedAt = now
	w.recalcTotalCost()
}

// recalcTotalCost mirrors the established rollup: total cost equals parts
// cost. Labor hours are tracked but carry no rate and are not costed.
func (w *WorkOrder) recalcTotalCost() {
	w.totalCost = w.partsCost
}

func (w *WorkOrder) record(event events.DomainEvent) {
	w.pendingEvents = append(w.pendingEvents, event)
}
