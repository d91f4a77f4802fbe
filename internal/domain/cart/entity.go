// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidCart = errors.New("cart: invalid")

// DefaultCartTTL is the inactivity window after which the cart becomes
// eligible for auto deletion (Firestore TTL should be configured on expiresAt).
const DefaultCartTTL = 7 * 24 * time.Hour

// Line is one line item in a cart.
//
// Uniqueness is defined by ProductID: at most one line per distinct product.
// UnitPrice is a snapshot taken at add time; it drives the derived Total but
// checkout re-prices from the live catalog, so staleness here never leaks
// into an order.
type Line struct {
	ProductID string  `json:"productId" firestore:"productId"`
	UnitPrice float64 `json:"unitPrice" firestore:"unitPrice"`
	Qty       int     `json:"qty" firestore:"qty"`
}

// Cart holds the ordered line sequence plus the two derived scalars.
//
//   - docId = userId (one cart per user)
//   - Total and ItemCount are recomputed from Lines on every mutation and are
//     never written independently.
//   - ExpiresAt is refreshed on each mutation (storage-level TTL basis).
type Cart struct {
	// ID is the owning user's id (also the storage docId).
	ID string `json:"id" firestore:"id"`

	Lines []Line `json:"lines" firestore:"lines"`

	Total     float64 `json:"total" firestore:"total"`
	ItemCount int     `json:"itemCount" firestore:"itemCount"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

// NewCart creates an empty (or pre-seeded) cart for userID.
func NewCart(userID string, lines []Line, now time.Time) (*Cart, error) {
	c := &Cart{
		ID:        strings.TrimSpace(userID),
		Lines:     cloneLines(lines),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	}
	c.recompute()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Add increments quantity for productID, appending a new line when absent.
// qty must be >= 1. unitPrice is the current catalog price at add time.
//
// Stock is deliberately NOT checked here: adding beyond available stock is
// allowed and only checkout enforces the limit.
func (c *Cart) Add(productID string, unitPrice float64, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	pid := strings.TrimSpace(productID)
	if pid == "" || qty <= 0 || unitPrice < 0 {
		return ErrInvalidCart
	}

	idx := findLineIndex(c.Lines, pid)
	if idx >= 0 {
		c.Lines[idx].Qty += qty
		c.Lines[idx].UnitPrice = unitPrice
	} else {
		c.Lines = append(c.Lines, Line{ProductID: pid, UnitPrice: unitPrice, Qty: qty})
	}

	c.touch(now)
	return c.validate()
}

// SetQty replaces the quantity for productID in place.
// qty <= 0 removes the line. A missing line is left absent (no add).
func (c *Cart) SetQty(productID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return ErrInvalidCart
	}

	idx := findLineIndex(c.Lines, pid)

	if qty <= 0 {
		if idx >= 0 {
			c.Lines = removeIndex(c.Lines, idx)
		}
		c.touch(now)
		return c.validate()
	}

	if idx >= 0 {
		c.Lines[idx].Qty = qty
	}
	c.touch(now)
	return c.validate()
}

// Remove drops the line for productID; no-op when absent.
func (c *Cart) Remove(productID string, now time.Time) error {
	return c.SetQty(productID, 0, now)
}

// Clear resets to the empty state (total 0, itemCount 0).
func (c *Cart) Clear(now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	c.Lines = []Line{}
	c.touch(now)
	return c.validate()
}

// Snapshot returns a copy of the current lines (checkout input).
func (c *Cart) Snapshot() []Line {
	if c == nil {
		return nil
	}
	return cloneLines(c.Lines)
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
	c.recompute()
}

// recompute rebuilds Total and ItemCount from the line sequence.
// Invariant: called on every mutation path, never skipped.
func (c *Cart) recompute() {
	total := 0.0
	count := 0
	for _, l := range c.Lines {
		total += l.UnitPrice * float64(l.Qty)
		count += l.Qty
	}
	c.Total = total
	c.ItemCount = count
}

func (c *Cart) validate() error {
	if c == nil {
		return ErrInvalidCart
	}
	if strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCart
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() || c.ExpiresAt.IsZero() {
		return ErrInvalidCart
	}
	if c.UpdatedAt.Before(c.CreatedAt) {
		return ErrInvalidCart
	}
	if c.ExpiresAt.Before(c.UpdatedAt) {
		return ErrInvalidCart
	}

	seen := map[string]bool{}
	for _, l := range c.Lines {
		pid := strings.TrimSpace(l.ProductID)
		if pid == "" || l.Qty <= 0 || l.UnitPrice < 0 {
			return ErrInvalidCart
		}
		if seen[pid] {
			return ErrInvalidCart
		}
		seen[pid] = true
	}
	return nil
}

func findLineIndex(lines []Line, productID string) int {
	for i := range lines {
		if lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func removeIndex(lines []Line, idx int) []Line {
	if idx < 0 || idx >= len(lines) {
		return lines
	}
	// preserve order
	return append(lines[:idx], lines[idx+1:]...)
}

func cloneLines(src []Line) []Line {
	if len(src) == 0 {
		return []Line{}
	}
	cp := make([]Line, len(src))
	copy(cp, src)
	return cp
}
