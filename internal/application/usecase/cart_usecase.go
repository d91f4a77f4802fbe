// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "storefront/internal/domain/cart"
	productdom "storefront/internal/domain/product"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
)

// CartUsecase coordinates cart operations.
//
// The product repository is consulted on AddItem to snapshot the current unit
// price into the line; stock is intentionally not validated here (checkout's
// responsibility).
type CartUsecase struct {
	repo     cartdom.Repository
	products productdom.Repository
	clock    Clock
}

func NewCartUsecase(repo cartdom.Repository, products productdom.Repository) *CartUsecase {
	return &CartUsecase{
		repo:     repo,
		products: products,
		clock:    systemClock{},
	}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, products productdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, products: products, clock: clock}
}

// Get returns the cart for userID.
// If the cart does not exist, returns (nil, ErrCartNotFound).
func (uc *CartUsecase) Get(ctx context.Context, userID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

// GetOrCreate returns an existing cart; if absent, creates an empty one and
// persists it.
func (uc *CartUsecase) GetOrCreate(ctx context.Context, userID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	now := uc.clock.Now()
	newCart, err := cartdom.NewCart(uid, nil, now)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, newCart); err != nil {
		return nil, err
	}
	return newCart, nil
}

// AddItem increments qty for productID, snapshotting the current unit price.
// qty must be >= 1. The product must exist (product.ErrNotFound otherwise).
func (uc *CartUsecase) AddItem(ctx context.Context, userID, productID string, qty int) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" || qty <= 0 {
		return nil, ErrCartInvalidArgument
	}

	p, err := uc.products.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(uid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Add(pid, p.Price, qty, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetItemQty sets qty for productID.
// qty <= 0 removes the line; a missing line is never added.
func (uc *CartUsecase) SetItemQty(ctx context.Context, userID, productID string, qty int) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		// cart absent -> start from empty (SetQty on a missing line is a no-op)
		c, err = cartdom.NewCart(uid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.SetQty(pid, qty, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem removes productID from the cart (no-op when absent).
func (uc *CartUsecase) RemoveItem(ctx context.Context, userID, productID string) (*cartdom.Cart, error) {
	return uc.SetItemQty(ctx, userID, productID, 0)
}

// Clear deletes the cart (empty-cart UX and post-checkout reset).
func (uc *CartUsecase) Clear(ctx context.Context, userID string) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return ErrCartInvalidArgument
	}
	return uc.repo.DeleteByUserID(ctx, uid)
}
