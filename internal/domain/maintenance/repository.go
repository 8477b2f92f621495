package maintenance

import (
	"context"

	vo "mantis/internal/domain/maintenance/valueobjects"
)

// Repository is the persistence port for maintenance plans. Update must
// apply an optimistic version check and report a conflict on a stale write.
type Repository interface {
	Save(ctx context.Context, plan *Plan) error
	Update(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByCode(ctx context.Context, code string) (*Plan, error)
	List(ctx context.Context, filter Filter) ([]*Plan, int64, error)
}

// Filter narrows plan listings.
type Filter struct {
	TriggerType *vo.TriggerType
	AssetID     *uint
	IsActive    *bool
	Priority    *vo.Priority
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}
