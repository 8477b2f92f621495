// Package asset holds the equipment register: every maintainable machine is
// an asset identified by a unique code.
package asset

import (
	"fmt"
	"time"

	vo "mantis/internal/domain/asset/valueobjects"
)

// Location places an asset on the shop floor.
type Location struct {
	Factory  string
	Workshop string
	Line     string
	Station  string
}

// Path renders the location as Factory/Workshop/Line/Station, skipping
// empty segments.
func (l Location) Path() string {
	path := ""
	for _, seg := range []string{l.Factory, l.Workshop, l.Line, l.Station} {
		if seg == "" {
			continue
		}
		if path != "" {
			path += "/"
		}
		path += seg
	}
	return path
}

type Asset struct {
	id             uint
	code           string
	name           string
	location       Location
	vendor         string
	model          string
	serialNumber   string
	specification  string
	status         vo.Status
	criticality    string
	commissionedOn *time.Time
	createdBy      uint
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAsset(code, name string, location Location, createdBy uint, now time.Time) (*Asset, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("asset code is required")
	}
	if len(code) > 50 {
		return nil, fmt.Errorf("asset code exceeds maximum length of 50 characters")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("asset name is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("created by ID is required")
	}

	return &Asset{
		code:      code,
		name:      name,
		location:  location,
		status:    vo.StatusActive,
		createdBy: createdBy,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAsset(
	id uint,
	code, name string,
	location Location,
	vendor, model, serialNumber, specification string,
	status vo.Status,
	criticality string,
	commissionedOn *time.Time,
	createdBy uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("asset code is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid asset status")
	}

	return &Asset{
		id:             id,
		code:           code,
		name:           name,
		location:       location,
		vendor:         vendor,
		model:          model,
		serialNumber:   serialNumber,
		specification:  specification,
		status:         status,
		criticality:    criticality,
		commissionedOn: commissionedOn,
		createdBy:      createdBy,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (a *Asset) ID() uint                   { return a.id }
func (a *Asset) Code() string               { return a.code }
func (a *Asset) Name() string               { return a.name }
func (a *Asset) Location() Location         { return a.location }
func (a *Asset) Vendor() string             { return a.vendor }
func (a *Asset) Model() string              { return a.model }
func (a *Asset) SerialNumber() string       { return a.serialNumber }
func (a *Asset) Specification() string      { return a.specification }
func (a *Asset) Status() vo.Status          { return a.status }
func (a *Asset) Criticality() string        { return a.criticality }
func (a *Asset) CommissionedOn() *time.Time { return a.commissionedOn }
func (a *Asset) CreatedBy() uint            { return a.createdBy }
func (a *Asset) Version() int               { return a.version }
func (a *Asset) CreatedAt() time.Time       { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time       { return a.updatedAt }

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Asset) SetDetails(vendor, model, serialNumber, specification, criticality string, commissionedOn *time.Time) {
	a.vendor = vendor
	a.model = model
	a.serialNumber = serialNumber
	a.specification = specification
	a.criticality = criticality
	a.commissionedOn = commissionedOn
}

// ChangeStatus moves the asset to a new lifecycle state. Any valid state is
// reachable from any other; the register tracks reality, it does not gate it.
func (a *Asset) ChangeStatus(newStatus vo.Status, now time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid asset status: %s", newStatus)
	}
	if a.status == newStatus {
		return nil
	}
	a.status = newStatus
	a.version++
	a.updatedAt = now
	return nil
}

// IsMaintainable reports whether work orders may target this asset.
func (a *Asset) IsMaintainable() bool {
	return a.status != vo.StatusRetired
}

func (a *Asset) Snapshot() string {
	return fmt.Sprintf("%s - %s", a.code, a.name)
}
