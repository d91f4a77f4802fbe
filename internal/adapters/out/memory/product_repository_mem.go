// internal/adapters/out/memory/product_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	productdom "storefront/internal/domain/product"
)

// ProductRepositoryMem implements product.Repository in memory.
//
// Insertion order is preserved so List is deterministic (the UI-facing
// "authoritative set" ordering).
type ProductRepositoryMem struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]productdom.Product
}

func NewProductRepositoryMem() *ProductRepositoryMem {
	return &ProductRepositoryMem{
		byID: make(map[string]productdom.Product),
	}
}

func (r *ProductRepositoryMem) List(ctx context.Context) ([]productdom.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]productdom.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *ProductRepositoryMem) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryMem) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return productdom.Product{}, productdom.ErrConflict
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *ProductRepositoryMem) Save(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return productdom.Product{}, productdom.ErrNotFound
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *ProductRepositoryMem) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pid := strings.TrimSpace(id)
	if _, exists := r.byID[pid]; !exists {
		return productdom.ErrNotFound
	}
	delete(r.byID, pid)
	for i, v := range r.order {
		if v == pid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
