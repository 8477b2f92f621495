package maintenance

import (
	"fmt"
	"time"

	vo "mantis/internal/domain/maintenance/valueobjects"
	"mantis/internal/domain/shared/events"
	"mantis/internal/shared/biztime"
)

// TemplateItem is one entry of a plan's checklist template. Items are copied
// onto every work order generated from the plan.
type TemplateItem struct {
	Item     string `json:"item"`
	Standard string `json:"standard,omitempty"`
}

// Plan is one recurring maintenance obligation for one asset, triggered
// either by calendar time or by a usage counter. Exactly one of the two
// trigger field groups is relevant, selected by the trigger type.
type Plan struct {
	id                uint
	code              string
	assetID           uint
	title             string
	description       string
	triggerType       vo.TriggerType
	frequencyValue    uint
	frequencyUnit     vo.FrequencyUnit
	counterName       string
	counterThreshold  *float64
	checklistTemplate []TemplateItem
	estimatedHours    *float64
	estimatedCost     *float64
	requiredSkills    string
	priority          vo.Priority
	isActive          bool
	lastGeneratedDate *time.Time
	lastCounterValue  *float64
	createdBy         uint
	version           int
	createdAt         time.Time
	updatedAt         time.Time

	pendingEvents []events.DomainEvent
}

// NewTimePlan creates an active time-triggered plan.
func NewTimePlan(
	code string,
	assetID uint,
	title string,
	description string,
	frequencyValue uint,
	frequencyUnit vo.FrequencyUnit,
	priority vo.Priority,
	createdBy uint,
	now time.Time,
) (*Plan, error) {
	p, err := newPlan(code, assetID, title, description, vo.TriggerTime, priority, createdBy, now)
	if err != nil {
		return nil, err
	}
	if frequencyValue < 1 {
		return nil, fmt.Errorf("frequency value must be at least 1")
	}
	if !frequencyUnit.IsValid() {
		return nil, fmt.Errorf("invalid frequency unit")
	}
	p.frequencyValue = frequencyValue
	p.frequencyUnit = frequencyUnit
	return p, nil
}

// NewCounterPlan creates an active counter-triggered plan.
func NewCounterPlan(
	code string,
	assetID uint,
	title string,
	description string,
	counterName string,
	counterThreshold float64,
	priority vo.Priority,
	createdBy uint,
	now time.Time,
) (*Plan, error) {
	p, err := newPlan(code, assetID, title, description, vo.TriggerCounter, priority, createdBy, now)
	if err != nil {
		return nil, err
	}
	if counterThreshold < 0 {
		return nil, fmt.Errorf("counter threshold cannot be negative")
	}
	p.counterName = counterName
	p.counterThreshold = &counterThreshold
	return p, nil
}

func newPlan(
	code string,
	assetID uint,
	title string,
	description string,
	triggerType vo.TriggerType,
	priority vo.Priority,
	createdBy uint,
	now time.Time,
) (*Plan, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("plan code is required")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("created by ID is required")
	}

	return &Plan{
		code:              code,
		assetID:           assetID,
		title:             title,
		description:       description,
		triggerType:       triggerType,
		checklistTemplate: []TemplateItem{},
		priority:          priority,
		isActive:          true,
		createdBy:         createdBy,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persisted state.
func ReconstructPlan(
	id uint,
	code string,
	assetID uint,
	title string,
	description string,
	triggerType vo.TriggerType,
	frequencyValue uint,
	frequencyUnit vo.FrequencyUnit,
	counterName string,
	counterThreshold *float64,
	checklistTemplate []TemplateItem,
	estimatedHours, estimatedCost *float64,
	requiredSkills string,
	priority vo.Priority,
	isActive bool,
	lastGeneratedDate *time.Time,
	lastCounterValue *float64,
	createdBy uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("plan code is required")
	}
	if !triggerType.IsValid() {
		return nil, fmt.Errorf("invalid trigger type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if checklistTemplate == nil {
		checklistTemplate = []TemplateItem{}
	}

	return &Plan{
		id:                id,
		code:              code,
		assetID:           assetID,
		title:             title,
		description:       description,
		triggerType:       triggerType,
		frequencyValue:    frequencyValue,
		frequencyUnit:     frequencyUnit,
		counterName:       counterName,
		counterThreshold:  counterThreshold,
		checklistTemplate: checklistTemplate,
		estimatedHours:    estimatedHours,
		estimatedCost:     estimatedCost,
		requiredSkills:    requiredSkills,
		priority:          priority,
		isActive:          isActive,
		lastGeneratedDate: lastGeneratedDate,
		lastCounterValue:  lastCounterValue,
		createdBy:         createdBy,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Plan) ID() uint                      { return p.id }
func (p *Plan) Code() string                  { return p.code }
func (p *Plan) AssetID() uint                 { return p.assetID }
func (p *Plan) Title() string                 { return p.title }
func (p *Plan) Description() string           { return p.description }
func (p *Plan) TriggerType() vo.TriggerType   { return p.triggerType }
func (p *Plan) FrequencyValue() uint          { return p.frequencyValue }
func (p *Plan) FrequencyUnit() vo.FrequencyUnit { return p.frequencyUnit }
func (p *Plan) CounterName() string           { return p.counterName }
func (p *Plan) CounterThreshold() *float64    { return p.counterThreshold }
func (p *Plan) EstimatedHours() *float64      { return p.estimatedHours }
func (p *Plan) EstimatedCost() *float64       { return p.estimatedCost }
func (p *Plan) RequiredSkills() string        { return p.requiredSkills }
func (p *Plan) Priority() vo.Priority         { return p.priority }
func (p *Plan) IsActive() bool                { return p.isActive }
func (p *Plan) LastGeneratedDate() *time.Time { return p.lastGeneratedDate }
func (p *Plan) LastCounterValue() *float64    { return p.lastCounterValue }
func (p *Plan) CreatedBy() uint               { return p.createdBy }
func (p *Plan) Version() int                  { return p.version }
func (p *Plan) CreatedAt() time.Time          { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time          { return p.updatedAt }

func (p *Plan) ChecklistTemplate() []TemplateItem {
	items := make([]TemplateItem, len(p.checklistTemplate))
	copy(items, p.checklistTemplate)
	return items
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) SetChecklistTemplate(items []TemplateItem) {
	if items == nil {
		items = []TemplateItem{}
	}
	p.checklistTemplate = items
}

func (p *Plan) SetEstimates(hours, cost *float64) {
	p.estimatedHours = hours
	p.estimatedCost = cost
}

func (p *Plan) SetRequiredSkills(skills string) {
	p.requiredSkills = skills
}

// ShouldGenerate decides whether a work order is due. It is a pure check:
// callers advance the trigger bookkeeping via MarkGenerated only after a
// work order has actually been created.
//
// Unknown trigger types and frequency units fail closed.
func (p *Plan) ShouldGenerate(currentDate time.Time, currentCounter *float64) bool {
	if !p.isActive {
		return false
	}

	switch p.triggerType {
	case vo.TriggerTime:
		return p.timeDue(currentDate)
	case vo.TriggerCounter:
		return p.counterDue(currentCounter)
	default:
		return false
	}
}

func (p *Plan) timeDue(currentDate time.Time) bool {
	// A plan that never generated is always due.
	if p.lastGeneratedDate == nil {
		return true
	}

	next, ok := p.NextDueDate()
	if !ok {
		return false
	}

	return !biztime.DateOnly(currentDate).Before(next)
}

// NextDueDate returns the next due date of a time-triggered plan that has
// generated at least once. The second return is false when the date cannot
// be computed (no prior generation or unrecognized unit).
func (p *Plan) NextDueDate() (time.Time, bool) {
	if p.lastGeneratedDate == nil {
		return time.Time{}, false
	}

	last := biztime.DateOnly(*p.lastGeneratedDate)
	n := int(p.frequencyValue)

	switch p.frequencyUnit {
	case vo.UnitDay:
		return biztime.AddDays(last, n), true
	case vo.UnitWeek:
		return biztime.AddWeeks(last, n), true
	case vo.UnitMonth:
		return biztime.AddMonths(last, n), true
	case vo.UnitQuarter:
		return biztime.AddMonths(last, n*3), true
	case vo.UnitYear:
		return biztime.AddYears(last, n), true
	default:
		return time.Time{}, false
	}
}

func (p *Plan) counterDue(currentCounter *float64) bool {
	if currentCounter == nil || p.counterThreshold == nil {
		return false
	}

	// First-ever evaluation compares the threshold as an absolute level;
	// afterwards the threshold is the required delta since last generation.
	if p.lastCounterValue == nil {
		return *currentCounter >= *p.counterThreshold
	}

	return *currentCounter-*p.lastCounterValue >= *p.counterThreshold
}

// MarkGenerated advances the trigger bookkeeping after a work order was
// durably created from this plan.
func (p *Plan) MarkGenerated(generatedOn time.Time, counterValue *float64, now time.Time) {
	d := biztime.DateOnly(generatedOn)
	p.lastGeneratedDate = &d
	if counterValue != nil {
		v := *counterValue
		p.lastCounterValue = &v
	}
	p.version++
	p.updatedAt = now
}

func (p *Plan) Activate(now time.Time) {
	if p.isActive {
		return
	}
	p.isActive = true
	p.version++
	p.updatedAt = now
	p.record(NewPlanActivatedEvent(p.id, p.code, now))
}

func (p *Plan) Deactivate(now time.Time) {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.version++
	p.updatedAt = now
	p.record(NewPlanDeactivatedEvent(p.id, p.code, now))
}

// Snapshot returns a short human-readable representation for audit records.
func (p *Plan) Snapshot() string {
	return fmt.Sprintf("%s - %s", p.code, p.title)
}

func (p *Plan) GetEvents() []events.DomainEvent {
	evts := make([]events.DomainEvent, len(p.pendingEvents))
	copy(evts, p.pendingEvents)
	return evts
}

func (p *Plan) ClearEvents() {
	p.pendingEvents = nil
}

func (p *Plan) record(event events.DomainEvent) {
	p.pendingEvents = append(p.pendingEvents, event)
}
