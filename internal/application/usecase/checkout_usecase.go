// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
	userdom "storefront/internal/domain/user"
)

// OrderMailerPort is an outbound port for the post-checkout confirmation
// email. Sending is best-effort: a mail failure never fails the order.
type OrderMailerPort interface {
	SendOrderConfirmation(ctx context.Context, toEmail string, o orderdom.Order) error
}

var (
	ErrCheckoutInvalidArgument = errors.New("checkout_usecase: invalid argument")
	ErrCheckoutCartEmpty       = errors.New("checkout_usecase: cart is empty")
	ErrCheckoutInFlight        = errors.New("checkout_usecase: checkout already in progress")
)

// ValidationError reports missing/invalid user input (user-correctable).
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: missing address fields: %s", strings.Join(e.Missing, ", "))
}

// InsufficientStockError names the first cart line whose quantity exceeds the
// currently available stock (user-correctable).
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("checkout: %s has only %d items available (requested %d)",
		e.Name, e.Available, e.Requested)
}

// CheckoutUsecase is the one multi-invariant operation: it validates the cart
// against live catalog stock, writes the order, decrements stock, and clears
// the cart. Validation strictly precedes every mutation, so a failure leaves
// stock, cart, and order storage untouched (no rollback needed).
type CheckoutUsecase struct {
	carts    cartdom.Repository
	products productdom.Repository
	orders   orderdom.Repository
	users    userdom.Repository
	mailer   OrderMailerPort

	clock Clock
	newID func() string

	mu       sync.Mutex
	inflight map[string]bool
}

func NewCheckoutUsecase(
	carts cartdom.Repository,
	products productdom.Repository,
	orders orderdom.Repository,
	users userdom.Repository,
	mailer OrderMailerPort,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:    carts,
		products: products,
		orders:   orders,
		users:    users,
		mailer:   mailer,
		clock:    systemClock{},
		newID:    uuid.NewString,
		inflight: make(map[string]bool),
	}
}

// NewCheckoutUsecaseWithClock is useful for tests.
func NewCheckoutUsecaseWithClock(
	carts cartdom.Repository,
	products productdom.Repository,
	orders orderdom.Repository,
	users userdom.Repository,
	mailer OrderMailerPort,
	clock Clock,
	newID func() string,
) *CheckoutUsecase {
	uc := NewCheckoutUsecase(carts, products, orders, users, mailer)
	if clock != nil {
		uc.clock = clock
	}
	if newID != nil {
		uc.newID = newID
	}
	return uc
}

// PlaceOrder runs the checkout for userID with the given shipping address.
//
// 1) every address field must be non-empty (ValidationError lists the gaps);
// 2) every line's qty must not exceed the product's stock, re-read fresh from
//    the catalog — cart snapshots are never trusted (InsufficientStockError
//    names the first offender);
// 3) on success: pending order with items priced at the current unit price,
//    stock decremented per line, cart cleared, order returned.
//
// A second PlaceOrder for the same user while one is in flight fails with
// ErrCheckoutInFlight (duplicate-submission guard; checkout is not cancelable).
func (uc *CheckoutUsecase) PlaceOrder(ctx context.Context, userID string, shipping orderdom.Address) (orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return orderdom.Order{}, ErrCheckoutInvalidArgument
	}

	if !uc.begin(uid) {
		return orderdom.Order{}, ErrCheckoutInFlight
	}
	defer uc.end(uid)

	// 1) address validation
	if missing := shipping.MissingFields(); len(missing) > 0 {
		return orderdom.Order{}, &ValidationError{Missing: missing}
	}

	// 2) stock validation against the live catalog
	c, err := uc.carts.GetByUserID(ctx, uid)
	if err != nil {
		return orderdom.Order{}, err
	}
	if c == nil || len(c.Lines) == 0 {
		return orderdom.Order{}, ErrCheckoutCartEmpty
	}

	lines := c.Snapshot()
	fresh := make([]productdom.Product, 0, len(lines))
	for _, l := range lines {
		p, err := uc.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return orderdom.Order{}, err
		}
		if l.Qty > p.Stock {
			return orderdom.Order{}, &InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: l.Qty,
				Available: p.Stock,
			}
		}
		fresh = append(fresh, p)
	}

	// 3) commit: order snapshot, stock decrement, cart reset
	now := uc.clock.Now()

	items := make([]orderdom.ItemSnapshot, 0, len(lines))
	for i, l := range lines {
		items = append(items, orderdom.ItemSnapshot{
			ID:        uc.newID(),
			ProductID: l.ProductID,
			Name:      fresh[i].Name,
			Image:     fresh[i].Image,
			UnitPrice: fresh[i].Price,
			Qty:       l.Qty,
		})
	}

	o, err := orderdom.New(uc.newID(), uid, items, shipping, now)
	if err != nil {
		return orderdom.Order{}, err
	}

	created, err := uc.orders.Create(ctx, o)
	if err != nil {
		return orderdom.Order{}, err
	}

	for i := range fresh {
		p := fresh[i]
		if err := p.DecrementStock(lines[i].Qty, now); err != nil {
			return orderdom.Order{}, err
		}
		if _, err := uc.products.Save(ctx, p); err != nil {
			return orderdom.Order{}, err
		}
	}

	if err := uc.carts.DeleteByUserID(ctx, uid); err != nil {
		return orderdom.Order{}, err
	}

	uc.notify(ctx, created)

	log.Printf("[checkout_uc] OK: order placed orderId=%s userId=%s total=%.2f items=%d",
		created.ID, uid, created.Total, len(created.Items))
	return created, nil
}

// notify sends the confirmation mail, best-effort.
func (uc *CheckoutUsecase) notify(ctx context.Context, o orderdom.Order) {
	if uc.mailer == nil || uc.users == nil {
		return
	}
	u, err := uc.users.GetByID(ctx, o.UserID)
	if err != nil {
		log.Printf("[checkout_uc] WARN: confirmation mail skipped, user lookup failed userId=%s err=%v", o.UserID, err)
		return
	}
	if err := uc.mailer.SendOrderConfirmation(ctx, u.Email, o); err != nil {
		log.Printf("[checkout_uc] WARN: confirmation mail failed orderId=%s err=%v", o.ID, err)
	}
}

func (uc *CheckoutUsecase) begin(userID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inflight[userID] {
		return false
	}
	uc.inflight[userID] = true
	return true
}

func (uc *CheckoutUsecase) end(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inflight, userID)
}
