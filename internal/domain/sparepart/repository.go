package sparepart

import "context"

// Filter narrows part listings.
type Filter struct {
	Keyword      string
	BelowMinimum *bool
}

// Repository defines the persistence port for spare parts and their
// movement ledger.
type Repository interface {
	Save(ctx context.Context, p *Part) error
	FindByID(ctx context.Context, id uint) (*Part, error)
	FindByCode(ctx context.Context, code string) (*Part, error)
	Update(ctx context.Context, p *Part) error
	List(ctx context.Context, filter Filter, offset, limit int) ([]*Part, int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	SaveMovements(ctx context.Context, movements []Movement) error
	ListMovements(ctx context.Context, partID uint, offset, limit int) ([]Movement, int64, error)
}
