// Package sparepart manages the spare part inventory and its
// movement ledger. Stock levels only change through guarded
// movements so the ledger always reconciles with the quantity
// on hand.
package sparepart

import (
	"fmt"
	"strings"
	"time"
)

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIn     MovementType = "in"
	MovementOut    MovementType = "out"
	MovementAdjust MovementType = "adjust"
)

func (m MovementType) IsValid() bool {
	switch m {
	case MovementIn, MovementOut, MovementAdjust:
		return true
	}
	return false
}

// Movement is one entry of the stock ledger. QuantityAfter records
// the resulting stock so the ledger can be audited without replay.
type Movement struct {
	ID            uint
	PartID        uint
	Type          MovementType
	Quantity      float64
	QuantityAfter float64
	WorkOrderID   *uint
	Reason        string
	PerformedBy   uint
	OccurredAt    time.Time
}

// Part is the spare part aggregate.
type Part struct {
	id            uint
	code          string
	name          string
	specification string
	category      string
	unit          string
	supplier      string
	quantity      float64
	safetyStock   float64
	minQuantity   float64
	maxQuantity   float64
	unitPrice     float64
	location      string
	version       int
	createdAt     time.Time
	updatedAt     time.Time

	movements []Movement
}

func NewPart(code, name, specification, category, unit, supplier string, safetyStock, minQuantity, maxQuantity, unitPrice float64, location string, now time.Time) (*Part, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("part code is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("part name is required")
	}
	if safetyStock < 0 || minQuantity < 0 || maxQuantity < 0 {
		return nil, fmt.Errorf("stock thresholds cannot be negative")
	}
	if maxQuantity > 0 && maxQuantity < minQuantity {
		return nil, fmt.Errorf("maximum stock cannot be below minimum stock")
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}

	return &Part{
		code:          code,
		name:          name,
		specification: specification,
		category:      category,
		unit:          unit,
		supplier:      supplier,
		quantity:      0,
		safetyStock:   safetyStock,
		minQuantity:   minQuantity,
		maxQuantity:   maxQuantity,
		unitPrice:     unitPrice,
		location:      location,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPart(
	id uint,
	code, name, specification, category, unit, supplier string,
	quantity, safetyStock, minQuantity, maxQuantity, unitPrice float64,
	location string,
	version int,
	createdAt, updatedAt time.Time,
) (*Part, error) {
	if id == 0 {
		return nil, fmt.Errorf("part ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("part code is required")
	}

	return &Part{
		id:            id,
		code:          code,
		name:          name,
		specification: specification,
		category:      category,
		unit:          unit,
		supplier:      supplier,
		quantity:      quantity,
		safetyStock:   safetyStock,
		minQuantity:   minQuantity,
		maxQuantity:   maxQuantity,
		unitPrice:     unitPrice,
		location:      location,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Part) ID() uint              { return p.id }
func (p *Part) Code() string          { return p.code }
func (p *Part) Name() string          { return p.name }
func (p *Part) Specification() string { return p.specification }
func (p *Part) Category() string      { return p.category }
func (p *Part) Unit() string          { return p.unit }
func (p *Part) Supplier() string      { return p.supplier }
func (p *Part) Quantity() float64     { return p.quantity }
func (p *Part) SafetyStock() float64  { return p.safetyStock }
func (p *Part) MinQuantity() float64  { return p.minQuantity }
func (p *Part) MaxQuantity() float64  { return p.maxQuantity }
func (p *Part) UnitPrice() float64    { return p.unitPrice }
func (p *Part) Location() string      { return p.location }
func (p *Part) Version() int          { return p.version }
func (p *Part) CreatedAt() time.Time  { return p.createdAt }
func (p *Part) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Part) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("part ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsBelowMinimum reports whether the stock level has fallen under
// the reorder threshold.
func (p *Part) IsBelowMinimum() bool {
	return p.quantity < p.minQuantity
}

// IsBelowSafetyStock reports whether the stock level has fallen
// under the safety stock threshold.
func (p *Part) IsBelowSafetyStock() bool {
	return p.quantity < p.safetyStock
}

// StockIn receives quantity into stock. The quantity must be
// strictly positive.
func (p *Part) StockIn(qty float64, reason string, performedBy uint, now time.Time) error {
	if qty <= 0 {
		return fmt.Errorf("stock in quantity must be positive")
	}
	p.quantity += qty
	p.recordMovement(MovementIn, qty, nil, reason, performedBy, now)
	p.touch(now)
	return nil
}

// StockOut issues quantity from stock, optionally against a work
// order. It rejects non-positive quantities and anything exceeding
// the quantity on hand, so stock can never go negative.
func (p *Part) StockOut(qty float64, workOrderID *uint, reason string, performedBy uint, now time.Time) error {
	if qty <= 0 {
		return fmt.Errorf("stock out quantity must be positive")
	}
	if qty > p.quantity {
		return fmt.Errorf("insufficient stock: have %.2f, requested %.2f", p.quantity, qty)
	}
	p.quantity -= qty
	p.recordMovement(MovementOut, qty, workOrderID, reason, performedBy, now)
	p.touch(now)
	return nil
}

// AdjustStock sets the quantity on hand to an absolute value after a
// physical count. The delta is recorded as an adjustment movement.
func (p *Part) AdjustStock(newQty float64, reason string, performedBy uint, now time.Time) error {
	if newQty < 0 {
		return fmt.Errorf("adjusted quantity cannot be negative")
	}
	if reason == "" {
		return fmt.Errorf("adjustment reason is required")
	}
	delta := newQty - p.quantity
	p.quantity = newQty
	p.recordMovement(MovementAdjust, delta, nil, reason, performedBy, now)
	p.touch(now)
	return nil
}

func (p *Part) SetDetails(name, specification, category, unit, supplier string, safetyStock, minQuantity, maxQuantity, unitPrice float64, location string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("part name is required")
	}
	if safetyStock < 0 || minQuantity < 0 || maxQuantity < 0 {
		return fmt.Errorf("stock thresholds cannot be negative")
	}
	if unitPrice < 0 {
		return fmt.Errorf("unit price cannot be negative")
	}
	p.name = name
	p.specification = specification
	p.category = category
	p.unit = unit
	p.supplier = supplier
	p.safetyStock = safetyStock
	p.minQuantity = minQuantity
	p.maxQuantity = maxQuantity
	p.unitPrice = unitPrice
	p.location = location
	p.touch(now)
	return nil
}

func (p *Part) recordMovement(t MovementType, qty float64, workOrderID *uint, reason string, performedBy uint, now time.Time) {
	p.movements = append(p.movements, Movement{
		PartID:        p.id,
		Type:          t,
		Quantity:      qty,
		QuantityAfter: p.quantity,
		WorkOrderID:   workOrderID,
		Reason:        reason,
		PerformedBy:   performedBy,
		OccurredAt:    now,
	})
}

func (p *Part) touch(now time.Time) {
	p.version++
	p.updatedAt = now
}

// PendingMovements returns the ledger entries recorded since load.
func (p *Part) PendingMovements() []Movement {
	return p.movements
}

// ClearMovements discards recorded movements after they are persisted.
func (p *Part) ClearMovements() {
	p.movements = nil
}
