package product

import (
	"context"
	"errors"
)

// Repository is the persistence port for the product catalog.
//
// The catalog is the single source of truth for stock; cart snapshots may go
// stale relative to it, which is why checkout re-reads through this port
// instead of trusting cached cart data.
type Repository interface {
	// List returns the full authoritative set (insertion order).
	List(ctx context.Context) ([]Product, error)

	// GetByID returns ErrNotFound if id is absent.
	GetByID(ctx context.Context, id string) (Product, error)

	Create(ctx context.Context, p Product) (Product, error)

	// Save overwrites an existing product; ErrNotFound if id is absent.
	Save(ctx context.Context, p Product) (Product, error)

	// Delete removes a product; ErrNotFound if id is absent.
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound = errors.New("product: not found")
	ErrConflict = errors.New("product: conflict")
)
