// internal/adapters/out/memory/cart_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	cartdom "storefront/internal/domain/cart"
)

// CartRepositoryMem implements cart.Repository in memory (one cart per user).
type CartRepositoryMem struct {
	mu     sync.RWMutex
	byUser map[string]cartdom.Cart
}

func NewCartRepositoryMem() *CartRepositoryMem {
	return &CartRepositoryMem{byUser: make(map[string]cartdom.Cart)}
}

// GetByUserID returns (nil, nil) when absent (nil policy, see the port).
func (r *CartRepositoryMem) GetByUserID(ctx context.Context, userID string) (*cartdom.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byUser[strings.TrimSpace(userID)]
	if !ok {
		return nil, nil
	}
	cp := c
	cp.Lines = append([]cartdom.Line(nil), c.Lines...)
	return &cp, nil
}

func (r *CartRepositoryMem) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if c == nil {
		return cartdom.ErrInvalidCart
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	cp.Lines = append([]cartdom.Line(nil), c.Lines...)
	r.byUser[c.ID] = cp
	return nil
}

func (r *CartRepositoryMem) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser, strings.TrimSpace(userID))
	return nil
}
