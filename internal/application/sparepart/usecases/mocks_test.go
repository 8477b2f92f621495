package usecases

import (
	"context"

	"mantis/internal/domain/sparepart"
)

type mockPartRepository struct {
	SaveFunc          func(ctx context.Context, p *sparepart.Part) error
	FindByIDFunc      func(ctx context.Context, id uint) (*sparepart.Part, error)
	FindByCodeFunc    func(ctx context.Context, code string) (*sparepart.Part, error)
	UpdateFunc        func(ctx context.Context, p *sparepart.Part) error
	ListFunc          func(ctx context.Context, filter sparepart.Filter, offset, limit int) ([]*sparepart.Part, int64, error)
	ExistsByCodeFunc  func(ctx context.Context, code string) (bool, error)
	SaveMovementsFunc func(ctx context.Context, movements []sparepart.Movement) error
	ListMovementsFunc func(ctx context.Context, partID uint, offset, limit int) ([]sparepart.Movement, int64, error)
}

func (m *mockPartRepository) Save(ctx context.Context, p *sparepart.Part) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPartRepository) FindByID(ctx context.Context, id uint) (*sparepart.Part, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPartRepository) FindByCode(ctx context.Context, code string) (*sparepart.Part, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockPartRepository) Update(ctx context.Context, p *sparepart.Part) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPartRepository) List(ctx context.Context, filter sparepart.Filter, offset, limit int) ([]*sparepart.Part, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockPartRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, code)
	}
	return false, nil
}

func (m *mockPartRepository) SaveMovements(ctx context.Context, movements []sparepart.Movement) error {
	if m.SaveMovementsFunc != nil {
		return m.SaveMovementsFunc(ctx, movements)
	}
	return nil
}

func (m *mockPartRepository) ListMovements(ctx context.Context, partID uint, offset, limit int) ([]sparepart.Movement, int64, error) {
	if m.ListMovementsFunc != nil {
		return m.ListMovementsFunc(ctx, partID, offset, limit)
	}
	return nil, 0, nil
}

type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}
