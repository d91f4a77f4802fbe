package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	c, err := NewCart("user-1", nil, t0)
	require.NoError(t, err)
	return c
}

// derived totals must match the line sequence after every mutation
func checkDerived(t *testing.T, c *Cart) {
	t.Helper()
	total := 0.0
	count := 0
	for _, l := range c.Lines {
		total += l.UnitPrice * float64(l.Qty)
		count += l.Qty
	}
	assert.Equal(t, total, c.Total)
	assert.Equal(t, count, c.ItemCount)
}

func TestNewCart(t *testing.T) {
	c := newTestCart(t)
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.Total)
	assert.Zero(t, c.ItemCount)
	assert.Equal(t, t0.Add(DefaultCartTTL), c.ExpiresAt)

	_, err := NewCart("  ", nil, t0)
	assert.ErrorIs(t, err, ErrInvalidCart)
}

func TestAddMergesSameProduct(t *testing.T) {
	c := newTestCart(t)

	require.NoError(t, c.Add("p1", 100, 2, t0))
	require.NoError(t, c.Add("p1", 100, 3, t0.Add(time.Minute)))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Qty)
	assert.Equal(t, 500.0, c.Total)
	assert.Equal(t, 5, c.ItemCount)
	checkDerived(t, c)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := newTestCart(t)

	require.NoError(t, c.Add("p1", 10, 1, t0))
	require.NoError(t, c.Add("p2", 20, 2, t0))
	require.NoError(t, c.Add("p1", 10, 1, t0))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "p1", c.Lines[0].ProductID)
	assert.Equal(t, "p2", c.Lines[1].ProductID)
	checkDerived(t, c)
}

func TestAddRejectsBadInput(t *testing.T) {
	c := newTestCart(t)

	assert.ErrorIs(t, c.Add("", 10, 1, t0), ErrInvalidCart)
	assert.ErrorIs(t, c.Add("p1", 10, 0, t0), ErrInvalidCart)
	assert.ErrorIs(t, c.Add("p1", 10, -2, t0), ErrInvalidCart)
	assert.ErrorIs(t, c.Add("p1", -1, 1, t0), ErrInvalidCart)
	assert.Empty(t, c.Lines)
}

func TestSetQtyReplacesInPlace(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.Add("p1", 10, 2, t0))

	require.NoError(t, c.SetQty("p1", 7, t0))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 7, c.Lines[0].Qty)
	assert.Equal(t, 70.0, c.Total)
	checkDerived(t, c)
}

func TestSetQtyZeroRemoves(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.Add("p1", 10, 2, t0))
	require.NoError(t, c.Add("p2", 5, 1, t0))

	require.NoError(t, c.SetQty("p1", 0, t0))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p2", c.Lines[0].ProductID)
	checkDerived(t, c)

	// negative behaves the same
	require.NoError(t, c.SetQty("p2", -3, t0))
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.Total)
	assert.Zero(t, c.ItemCount)
}

func TestSetQtyMissingLineDoesNotAdd(t *testing.T) {
	c := newTestCart(t)

	require.NoError(t, c.SetQty("ghost", 4, t0))
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.ItemCount)
}

func TestRemoveIsNoopWhenAbsent(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.Add("p1", 10, 1, t0))

	require.NoError(t, c.Remove("ghost", t0))
	require.Len(t, c.Lines, 1)

	require.NoError(t, c.Remove("p1", t0))
	assert.Empty(t, c.Lines)
}

func TestClear(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.Add("p1", 10, 3, t0))
	require.NoError(t, c.Add("p2", 20, 1, t0))

	require.NoError(t, c.Clear(t0.Add(time.Hour)))
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.Total)
	assert.Zero(t, c.ItemCount)
	assert.Equal(t, t0.Add(time.Hour).Add(DefaultCartTTL), c.ExpiresAt)
}

func TestDerivedTotalsAcrossRandomishSequence(t *testing.T) {
	c := newTestCart(t)

	ops := []func() error{
		func() error { return c.Add("a", 3.5, 2, t0) },
		func() error { return c.Add("b", 10, 1, t0) },
		func() error { return c.SetQty("a", 5, t0) },
		func() error { return c.Add("c", 1.25, 4, t0) },
		func() error { return c.Remove("b", t0) },
		func() error { return c.SetQty("c", 0, t0) },
		func() error { return c.Add("a", 3.5, 1, t0) },
	}
	for _, op := range ops {
		require.NoError(t, op())
		checkDerived(t, c)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.Add("p1", 10, 1, t0))

	snap := c.Snapshot()
	snap[0].Qty = 99
	assert.Equal(t, 1, c.Lines[0].Qty)
}
