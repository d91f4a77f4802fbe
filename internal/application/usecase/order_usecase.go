// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	orderdom "storefront/internal/domain/order"
)

var (
	ErrOrderInvalidArgument = errors.New("order_usecase: invalid argument")
	ErrOrderForbidden       = errors.New("order_usecase: order belongs to another user")
)

// OrderUsecase serves order reads and the backoffice status transition.
// Orders are immutable after checkout except for status.
type OrderUsecase struct {
	repo  orderdom.Repository
	clock Clock
}

func NewOrderUsecase(repo orderdom.Repository) *OrderUsecase {
	return &OrderUsecase{repo: repo, clock: systemClock{}}
}

// ListForUser returns the user's orders, newest first.
func (uc *OrderUsecase) ListForUser(ctx context.Context, userID string) ([]orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrOrderInvalidArgument
	}
	return uc.repo.ListByUserID(ctx, uid)
}

// GetForUser returns one order, enforcing ownership.
func (uc *OrderUsecase) GetForUser(ctx context.Context, userID, orderID string) (orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	oid := strings.TrimSpace(orderID)
	if uid == "" || oid == "" {
		return orderdom.Order{}, ErrOrderInvalidArgument
	}
	o, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return orderdom.Order{}, err
	}
	if o.UserID != uid {
		return orderdom.Order{}, ErrOrderForbidden
	}
	return o, nil
}

// UpdateStatus advances an order's status (admin path).
func (uc *OrderUsecase) UpdateStatus(ctx context.Context, orderID string, status orderdom.Status) (orderdom.Order, error) {
	oid := strings.TrimSpace(orderID)
	if oid == "" {
		return orderdom.Order{}, ErrOrderInvalidArgument
	}
	o, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return orderdom.Order{}, err
	}
	if err := o.UpdateStatus(status, uc.clock.Now()); err != nil {
		return orderdom.Order{}, err
	}
	return uc.repo.Save(ctx, o)
}
