// internal/adapters/out/memory/order_repository_mem.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	orderdom "storefront/internal/domain/order"
)

// OrderRepositoryMem implements order.Repository in memory.
type OrderRepositoryMem struct {
	mu   sync.RWMutex
	byID map[string]orderdom.Order
}

func NewOrderRepositoryMem() *OrderRepositoryMem {
	return &OrderRepositoryMem{byID: make(map[string]orderdom.Order)}
}

func (r *OrderRepositoryMem) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

func (r *OrderRepositoryMem) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uid := strings.TrimSpace(userID)
	out := make([]orderdom.Order, 0)
	for _, o := range r.byID {
		if o.UserID == uid {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *OrderRepositoryMem) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; exists {
		return orderdom.Order{}, orderdom.ErrConflict
	}
	r.byID[o.ID] = o
	return o, nil
}

func (r *OrderRepositoryMem) Save(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	r.byID[o.ID] = o
	return o, nil
}
