package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/user"
	"mantis/internal/domain/workorder"
	vo "mantis/internal/domain/workorder/valueobjects"
	"mantis/internal/shared/authorization"
	"mantis/internal/shared/errors"
	"mantis/internal/shared/logger"
)

func newOpenWorkOrder(t *testing.T, id uint) *workorder.WorkOrder {
	t.Helper()
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	wo, err := workorder.ReconstructWorkOrder(
		id, "WO-20260301-001", 5,
		vo.TypeCM, vo.StatusOpen,
		"Hydraulic leak on press", "", vo.PriorityHigh, 2,
		nil, nil, nil,
		nil,
		nil, nil, nil, nil,
		"", "", "",
		nil,
		0, 0, 0, 0,
		nil, nil, nil, nil,
		"", 1, created, created,
	)
	require.NoError(t, err)
	return wo
}

func newActiveTechnician(t *testing.T, id uint) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(
		id, "tech", "tech@plant.local", "Tech One", "x",
		authorization.RoleTechnician, true, 1, now, now,
	)
	require.NoError(t, err)
	return u
}

func TestAssignWorkOrderUseCase_Execute_Success(t *testing.T) {
	assigneeID := uint(10)
	assignedBy := uint(5)
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	var updated *workorder.WorkOrder
	workOrderRepo := &mockWorkOrderRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return newOpenWorkOrder(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			updated = wo
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return newActiveTechnician(t, id), nil
		},
	}
	dispatcher := &mockEventDispatcher{}

	uc := NewAssignWorkOrderUseCase(workOrderRepo, userRepo, dispatcher, logger.NewNop())
	uc.now = func() time.Time { return now }

	result, err := uc.Execute(context.Background(), AssignWorkOrderCommand{
		WorkOrderID: 1,
		AssigneeID:  assigneeID,
		AssignedBy:  assignedBy,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.WorkOrderID)
	assert.Equal(t, assigneeID, result.AssigneeID)
	assert.Equal(t, "assigned", result.Status)

	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusAssigned, updated.Status())
	require.NotNil(t, updated.AssignedBy())
	assert.Equal(t, assignedBy, *updated.AssignedBy())
	require.NotNil(t, updated.AssignedAt())
	assert.Equal(t, now, *updated.AssignedAt())
	assert.Equal(t, 2, updated.Version())

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, workorder.EventTypeAssigned, dispatcher.published[0].GetEventType())
}

func TestAssignWorkOrderUseCase_Execute_InactiveAssignee(t *testing.T) {
	workOrderRepo := &mockWorkOrderRepository{}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			u := newActiveTechnician(t, id)
			u.Deactivate(time.Now())
			return u, nil
		},
	}

	uc := NewAssignWorkOrderUseCase(workOrderRepo, userRepo, &mockEventDispatcher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AssignWorkOrderCommand{
		WorkOrderID: 1,
		AssigneeID:  10,
		AssignedBy:  5,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestAssignWorkOrderUseCase_Execute_AlreadyAssigned(t *testing.T) {
	workOrderRepo := &mockWorkOrderRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			wo := newOpenWorkOrder(t, id)
			require.NoError(t, wo.Assign(11, 5, time.Now()))
			wo.ClearEvents()
			return wo, nil
		},
		UpdateFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			t.Fatal("update must not be called for a rejected transition")
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return newActiveTechnician(t, id), nil
		},
	}
	dispatcher := &mockEventDispatcher{}

	uc := NewAssignWorkOrderUseCase(workOrderRepo, userRepo, dispatcher, logger.NewNop())

	_, err := uc.Execute(context.Background(), AssignWorkOrderCommand{
		WorkOrderID: 1,
		AssigneeID:  10,
		AssignedBy:  5,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, dispatcher.published)
}

func TestAssignWorkOrderUseCase_Execute_VersionConflict(t *testing.T) {
	conflict := errors.NewConflictError("work order was modified concurrently")
	workOrderRepo := &mockWorkOrderRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return newOpenWorkOrder(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, wo *workorder.WorkOrder) error {
			return conflict
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return newActiveTechnician(t, id), nil
		},
	}
	dispatcher := &mockEventDispatcher{}

	uc := NewAssignWorkOrderUseCase(workOrderRepo, userRepo, dispatcher, logger.NewNop())

	_, err := uc.Execute(context.Background(), AssignWorkOrderCommand{
		WorkOrderID: 1,
		AssigneeID:  10,
		AssignedBy:  5,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))
	assert.Empty(t, dispatcher.published)
}

func TestAssignWorkOrderUseCase_Execute_ValidatesCommand(t *testing.T) {
	uc := NewAssignWorkOrderUseCase(&mockWorkOrderRepository{}, &mockUserRepository{}, &mockEventDispatcher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AssignWorkOrderCommand{AssigneeID: 10, AssignedBy: 5})
	assert.True(t, errors.IsValidation(err))

	_, err = uc.Execute(context.Background(), AssignWorkOrderCommand{WorkOrderID: 1, AssignedBy: 5})
	assert.True(t, errors.IsValidation(err))

	_, err = uc.Execute(context.Background(), AssignWorkOrderCommand{WorkOrderID: 1, AssigneeID: 10})
	assert.True(t, errors.IsValidation(err))
}
