package sparepart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPart(t *testing.T) *Part {
	t.Helper()
	p, err := ReconstructPart(
		1, "SP-001", "Bearing 6204", "6204-2RS", "bearing", "pcs", "SKF",
		10, 3, 5, 50, 12.5, "A-01-03", 1,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestPart_StockIn(t *testing.T) {
	p := newTestPart(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	err := p.StockIn(4, "purchase receipt", 7, now)
	require.NoError(t, err)
	assert.Equal(t, 14.0, p.Quantity())
	assert.Equal(t, 2, p.Version())

	require.Len(t, p.PendingMovements(), 1)
	m := p.PendingMovements()[0]
	assert.Equal(t, MovementIn, m.Type)
	assert.Equal(t, 4.0, m.Quantity)
	assert.Equal(t, 14.0, m.QuantityAfter)
	assert.Equal(t, uint(7), m.PerformedBy)
}

func TestPart_StockIn_RejectsNonPositive(t *testing.T) {
	p := newTestPart(t)
	now := time.Now()

	assert.Error(t, p.StockIn(0, "", 7, now))
	assert.Error(t, p.StockIn(-1, "", 7, now))
	assert.Equal(t, 10.0, p.Quantity())
	assert.Equal(t, 1, p.Version())
	assert.Empty(t, p.PendingMovements())
}

func TestPart_StockOut(t *testing.T) {
	p := newTestPart(t)
	now := time.Now()
	woID := uint(42)

	err := p.StockOut(3, &woID, "used on repair", 7, now)
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Quantity())

	require.Len(t, p.PendingMovements(), 1)
	m := p.PendingMovements()[0]
	assert.Equal(t, MovementOut, m.Type)
	require.NotNil(t, m.WorkOrderID)
	assert.Equal(t, uint(42), *m.WorkOrderID)
}

func TestPart_StockOut_InsufficientStock(t *testing.T) {
	p := newTestPart(t)
	now := time.Now()

	err := p.StockOut(10.01, nil, "", 7, now)
	assert.Error(t, err)
	assert.Equal(t, 10.0, p.Quantity())
	assert.Empty(t, p.PendingMovements())

	// issuing exactly the quantity on hand is allowed
	require.NoError(t, p.StockOut(10, nil, "", 7, now))
	assert.Equal(t, 0.0, p.Quantity())
}

func TestPart_StockOut_RejectsNonPositive(t *testing.T) {
	p := newTestPart(t)
	now := time.Now()

	assert.Error(t, p.StockOut(0, nil, "", 7, now))
	assert.Error(t, p.StockOut(-2, nil, "", 7, now))
	assert.Equal(t, 10.0, p.Quantity())
}

func TestPart_AdjustStock(t *testing.T) {
	p := newTestPart(t)
	now := time.Now()

	err := p.AdjustStock(6, "annual count", 7, now)
	require.NoError(t, err)
	assert.Equal(t, 6.0, p.Quantity())

	require.Len(t, p.PendingMovements(), 1)
	m := p.PendingMovements()[0]
	assert.Equal(t, MovementAdjust, m.Type)
	assert.Equal(t, -4.0, m.Quantity)
	assert.Equal(t, 6.0, m.QuantityAfter)
}

func TestPart_AdjustStock_RequiresReason(t *testing.T) {
	p := newTestPart(t)

	err := p.AdjustStock(6, "", 7, time.Now())
	assert.Error(t, err)
	assert.Equal(t, 10.0, p.Quantity())
}

func TestPart_AdjustStock_RejectsNegative(t *testing.T) {
	p := newTestPart(t)

	err := p.AdjustStock(-1, "count", 7, time.Now())
	assert.Error(t, err)
	assert.Equal(t, 10.0, p.Quantity())
}

func TestPart_IsBelowMinimum(t *testing.T) {
	p := newTestPart(t)
	now := time.Now()

	assert.False(t, p.IsBelowMinimum())

	require.NoError(t, p.StockOut(6, nil, "", 7, now))
	assert.True(t, p.IsBelowMinimum())
	assert.False(t, p.IsBelowSafetyStock())

	require.NoError(t, p.StockOut(2, nil, "", 7, now))
	assert.True(t, p.IsBelowSafetyStock())
	// exactly at minimum is not below
	require.NoError(t, p.StockIn(3, "", 7, now))
	assert.Equal(t, 5.0, p.Quantity())
	assert.False(t, p.IsBelowMinimum())
}

func TestPart_MovementLedgerAccumulates(t *testing.T) {
	p := newTestPart(t)
	now := time.Now()

	require.NoError(t, p.StockIn(5, "", 7, now))
	require.NoError(t, p.StockOut(2, nil, "", 7, now))
	require.NoError(t, p.AdjustStock(12, "count", 7, now))

	require.Len(t, p.PendingMovements(), 3)
	assert.Equal(t, 15.0, p.PendingMovements()[0].QuantityAfter)
	assert.Equal(t, 13.0, p.PendingMovements()[1].QuantityAfter)
	assert.Equal(t, 12.0, p.PendingMovements()[2].QuantityAfter)

	p.ClearMovements()
	assert.Empty(t, p.PendingMovements())
}

func TestNewPart_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewPart("", "Bearing", "", "", "pcs", "", 0, 0, 0, 0, "", now)
	assert.Error(t, err)

	_, err = NewPart("SP-001", "", "", "", "pcs", "", 0, 0, 0, 0, "", now)
	assert.Error(t, err)

	_, err = NewPart("SP-001", "Bearing", "", "", "pcs", "", 0, -1, 0, 0, "", now)
	assert.Error(t, err)

	_, err = NewPart("SP-001", "Bearing", "", "", "pcs", "", 0, 0, 0, -0.5, "", now)
	assert.Error(t, err)

	// max below min is inconsistent
	_, err = NewPart("SP-001", "Bearing", "", "", "pcs", "", 0, 5, 3, 0, "", now)
	assert.Error(t, err)

	p, err := NewPart("SP-001", "Bearing", "", "bearing", "pcs", "SKF", 1, 2, 20, 1.5, "A-01", now)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Quantity())
	assert.Equal(t, 1, p.Version())
}
