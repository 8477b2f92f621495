package asset

import (
	"context"

	vo "mantis/internal/domain/asset/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, id uint) (*Asset, error)
	GetByCode(ctx context.Context, code string) (*Asset, error)
	List(ctx context.Context, filter Filter) ([]*Asset, int64, error)
}

type Filter struct {
	Status   *vo.Status
	Factory  string
	Workshop string
	Search   string
	Page     int
	PageSize int
	SortBy   string
	SortOrder string
}
