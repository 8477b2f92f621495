package usecases

import (
	"context"
	"time"

	"mantis/internal/domain/asset"
	"mantis/internal/domain/shared/events"
	"mantis/internal/domain/user"
	"mantis/internal/domain/workorder"
)

type mockWorkOrderRepository struct {
	SaveFunc               func(ctx context.Context, wo *workorder.WorkOrder) error
	UpdateFunc             func(ctx context.Context, wo *workorder.WorkOrder) error
	GetByIDFunc            func(ctx context.Context, id uint) (*workorder.WorkOrder, error)
	GetByCodeFunc          func(ctx context.Context, code string) (*workorder.WorkOrder, error)
	ListFunc               func(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error)
	CountByStatusFunc      func(ctx context.Context) (map[string]int64, error)
	CountByTypeFunc        func(ctx context.Context) (map[string]int64, error)
	CountByPriorityFunc    func(ctx context.Context) (map[string]int64, error)
	CountOverdueFunc       func(ctx context.Context, now time.Time) (int64, error)
	LastCodeWithPrefixFunc func(ctx context.Context, prefix string) (string, error)
}

func (m *mockWorkOrderRepository) Save(ctx context.Context, wo *workorder.WorkOrder) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, wo)
	}
	return nil
}

func (m *mockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, wo)
	}
	return nil
}

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) GetByCode(ctx context.Context, code string) (*workorder.WorkOrder, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) List(ctx context.Context, filter workorder.Filter) ([]*workorder.WorkOrder, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockWorkOrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *mockWorkOrderRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	if m.CountByTypeFunc != nil {
		return m.CountByTypeFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *mockWorkOrderRepository) CountByPriority(ctx context.Context) (map[string]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *mockWorkOrderRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	if m.CountOverdueFunc != nil {
		return m.CountOverdueFunc(ctx, now)
	}
	return 0, nil
}

func (m *mockWorkOrderRepository) LastCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	if m.LastCodeWithPrefixFunc != nil {
		return m.LastCodeWithPrefixFunc(ctx, prefix)
	}
	return "", nil
}

type mockAssetRepository struct {
	SaveFunc      func(ctx context.Context, a *asset.Asset) error
	UpdateFunc    func(ctx context.Context, a *asset.Asset) error
	GetByIDFunc   func(ctx context.Context, id uint) (*asset.Asset, error)
	GetByCodeFunc func(ctx context.Context, code string) (*asset.Asset, error)
	ListFunc      func(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error)
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) GetByCode(ctx context.Context, code string) (*asset.Asset, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.Filter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	ListFunc             func(ctx context.Context, offset, limit int) ([]*user.User, int64, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

type mockCodeGenerator struct {
	NextCodeFunc func(ctx context.Context) (string, error)
}

func (m *mockCodeGenerator) NextCode(ctx context.Context) (string, error) {
	if m.NextCodeFunc != nil {
		return m.NextCodeFunc(ctx)
	}
	return "WO-20260101-001", nil
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	SubscribeFunc  func(eventType string, handler events.EventHandler) error

	published []events.DomainEvent
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(eventType, handler)
	}
	return nil
}
