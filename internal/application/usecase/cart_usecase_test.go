package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/adapters/out/memory"
	productdom "storefront/internal/domain/product"
)

func newCartUC(t *testing.T) (*CartUsecase, *memory.ProductRepositoryMem) {
	t.Helper()
	products := memory.NewProductRepositoryMem()
	uc := NewCartUsecaseWithClock(memory.NewCartRepositoryMem(), products, &fakeClock{t: testNow})
	return uc, products
}

func TestCartGetOrCreate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartUC(t)

	_, err := uc.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCartNotFound)

	c, err := uc.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	// now persisted
	got, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCartAddItemSnapshotsUnitPrice(t *testing.T) {
	ctx := context.Background()
	uc, products := newCartUC(t)
	seedProduct(t, products, "p1", "Coffee Maker", 89000, 15)

	c, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 89000.0, c.Lines[0].UnitPrice)
	assert.Equal(t, 178000.0, c.Total)
	assert.Equal(t, 2, c.ItemCount)
}

func TestCartAddItemMergesLines(t *testing.T) {
	ctx := context.Background()
	uc, products := newCartUC(t)
	seedProduct(t, products, "p1", "Coffee Maker", 89000, 15)

	_, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	c, err := uc.AddItem(ctx, "u1", "p1", 3)
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Qty)
	assert.Equal(t, 5, c.ItemCount)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartUC(t)

	_, err := uc.AddItem(ctx, "u1", "ghost", 1)
	assert.ErrorIs(t, err, productdom.ErrNotFound)

	// nothing was persisted for the user
	_, err = uc.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartAddItemAllowsQtyBeyondStock(t *testing.T) {
	ctx := context.Background()
	uc, products := newCartUC(t)
	seedProduct(t, products, "p1", "Coffee Maker", 89000, 15)

	// stock is enforced at checkout, not here
	c, err := uc.AddItem(ctx, "u1", "p1", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, c.ItemCount)
}

func TestCartSetItemQty(t *testing.T) {
	ctx := context.Background()
	uc, products := newCartUC(t)
	seedProduct(t, products, "p1", "Coffee Maker", 89000, 15)
	seedProduct(t, products, "p2", "Yoga Mat", 15000, 50)

	_, err := uc.AddItem(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, "u1", "p2", 1)
	require.NoError(t, err)

	c, err := uc.SetItemQty(ctx, "u1", "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Lines[0].Qty)
	assert.Equal(t, 4*89000.0+15000.0, c.Total)

	// zero removes the line
	c, err = uc.SetItemQty(ctx, "u1", "p1", 0)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p2", c.Lines[0].ProductID)
}

func TestCartSetItemQtyMissingLineDoesNotAdd(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartUC(t)

	c, err := uc.SetItemQty(ctx, "u1", "ghost", 4)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestCartRemoveItemAndClear(t *testing.T) {
	ctx := context.Background()
	uc, products := newCartUC(t)
	seedProduct(t, products, "p1", "Coffee Maker", 89000, 15)

	_, err := uc.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	c, err := uc.RemoveItem(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
	assert.Zero(t, c.Total)

	require.NoError(t, uc.Clear(ctx, "u1"))
	_, err = uc.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartRejectsBlankUser(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartUC(t)

	_, err := uc.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
	_, err = uc.AddItem(ctx, "", "p1", 1)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
	_, err = uc.AddItem(ctx, "u1", "p1", 0)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}
