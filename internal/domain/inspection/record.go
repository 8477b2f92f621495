// Package inspection records point checks against assets and
// aggregates their pass rates.
package inspection

import (
	"fmt"
	"strings"
	"time"

	"mantis/internal/domain/inspection/valueobjects"
)

// Record is a single inspection of an asset.
type Record struct {
	id            uint
	assetID       uint
	inspectorID   uint
	item          string
	result        valueobjects.Result
	measuredValue *float64
	standardRange string
	notes         string
	inspectedAt   time.Time
	createdAt     time.Time
}

func NewRecord(assetID, inspectorID uint, item string, result valueobjects.Result, measuredValue *float64, standardRange, notes string, inspectedAt, now time.Time) (*Record, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if inspectorID == 0 {
		return nil, fmt.Errorf("inspector ID is required")
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("inspection item is required")
	}
	if !result.IsValid() {
		return nil, fmt.Errorf("invalid inspection result: %s", result)
	}
	if inspectedAt.IsZero() {
		inspectedAt = now
	}

	return &Record{
		assetID:       assetID,
		inspectorID:   inspectorID,
		item:          item,
		result:        result,
		measuredValue: measuredValue,
		standardRange: standardRange,
		notes:         notes,
		inspectedAt:   inspectedAt,
		createdAt:     now,
	}, nil
}

func ReconstructRecord(
	id, assetID, inspectorID uint,
	item string,
	result valueobjects.Result,
	measuredValue *float64,
	standardRange, notes string,
	inspectedAt, createdAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if !result.IsValid() {
		return nil, fmt.Errorf("invalid inspection result: %s", result)
	}

	return &Record{
		id:            id,
		assetID:       assetID,
		inspectorID:   inspectorID,
		item:          item,
		result:        result,
		measuredValue: measuredValue,
		standardRange: standardRange,
		notes:         notes,
		inspectedAt:   inspectedAt,
		createdAt:     createdAt,
	}, nil
}

func (r *Record) ID() uint                     { return r.id }
func (r *Record) AssetID() uint                { return r.assetID }
func (r *Record) InspectorID() uint            { return r.inspectorID }
func (r *Record) Item() string                 { return r.item }
func (r *Record) Result() valueobjects.Result  { return r.result }
func (r *Record) MeasuredValue() *float64      { return r.measuredValue }
func (r *Record) StandardRange() string        { return r.standardRange }
func (r *Record) Notes() string                { return r.notes }
func (r *Record) InspectedAt() time.Time       { return r.inspectedAt }
func (r *Record) CreatedAt() time.Time         { return r.createdAt }

func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.id = id
	return nil
}

// Summary aggregates inspection outcomes for one asset over a window.
type Summary struct {
	AssetID   uint
	Total     int64
	PassCount int64
	FailCount int64
}

// PassRate returns the pass ratio in [0, 1], or 0 for an empty window.
func (s Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.PassCount) / float64(s.Total)
}
