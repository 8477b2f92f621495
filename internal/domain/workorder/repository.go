package workorder

import (
	"context"
	"time"

	vo "mantis/internal/domain/workorder/valueobjects"
)

// Repository is the persistence port for work orders. Update must apply an
// optimistic version check and report a conflict when the stored version
// does not match the loaded one.
type Repository interface {
	Save(ctx context.Context, wo *WorkOrder) error
	Update(ctx context.Context, wo *WorkOrder) error
	GetByID(ctx context.Context, id uint) (*WorkOrder, error)
	GetByCode(ctx context.Context, code string) (*WorkOrder, error)
	List(ctx context.Context, filter Filter) ([]*WorkOrder, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByType(ctx context.Context) (map[string]int64, error)
	CountByPriority(ctx context.Context) (map[string]int64, error)
	CountOverdue(ctx context.Context, now time.Time) (int64, error)

	// LastCodeWithPrefix returns the work order code with the highest
	// numeric suffix starting with the prefix, or empty when none exists.
	// Used for day-scoped code sequencing.
	LastCodeWithPrefix(ctx context.Context, prefix string) (string, error)
}

// Filter narrows work order listings.
type Filter struct {
	Status     *vo.Status
	Type       *vo.Type
	Priority   *vo.Priority
	AssetID    *uint
	AssigneeID *uint
	PlanID     *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// CodeGenerator produces unique work order codes.
type CodeGenerator interface {
	NextCode(ctx context.Context) (string, error)
}
