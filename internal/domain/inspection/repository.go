package inspection

import (
	"context"
	"time"
)

// Filter narrows inspection record listings.
type Filter struct {
	AssetID     *uint
	InspectorID *uint
	From        *time.Time
	To          *time.Time
}

// Repository defines the persistence port for inspection records.
type Repository interface {
	Save(ctx context.Context, r *Record) error
	FindByID(ctx context.Context, id uint) (*Record, error)
	List(ctx context.Context, filter Filter, offset, limit int) ([]*Record, int64, error)
	Summarize(ctx context.Context, assetID uint, from, to time.Time) (Summary, error)
}
