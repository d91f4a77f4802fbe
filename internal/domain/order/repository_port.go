package order

import (
	"context"
	"errors"
)

// Repository is the persistence port for Order.
type Repository interface {
	GetByID(ctx context.Context, id string) (Order, error)

	// ListByUserID returns the user's orders, newest first.
	ListByUserID(ctx context.Context, userID string) ([]Order, error)

	Create(ctx context.Context, o Order) (Order, error)

	// Save persists a status change; ErrNotFound if id is absent.
	Save(ctx context.Context, o Order) (Order, error)
}

var (
	ErrNotFound = errors.New("order: not found")
	ErrConflict = errors.New("order: conflict")
)
