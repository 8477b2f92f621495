package audit

import (
	"context"
	"time"
)

// Filter narrows audit trail queries.
type Filter struct {
	ActorID    *uint
	Action     *Action
	EntityType string
	EntityID   string
	From       *time.Time
	To         *time.Time
}

// Repository is the append-only persistence port for the audit trail.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter Filter, offset, limit int) ([]*Entry, int64, error)
}
