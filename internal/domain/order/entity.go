// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

// Address is the shipping destination (plain value object).
type Address struct {
	Street  string `json:"street" firestore:"street"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	ZipCode string `json:"zipCode" firestore:"zipCode"`
	Country string `json:"country" firestore:"country"`
}

// MissingFields returns the names of empty address fields (checkout validation).
func (a Address) MissingFields() []string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("street", a.Street)
	check("city", a.City)
	check("state", a.State)
	check("zipCode", a.ZipCode)
	check("country", a.Country)
	return missing
}

// ItemSnapshot is stored inside Order.Items. It carries the product data as it
// was at purchase time; later catalog edits never rewrite past orders.
type ItemSnapshot struct {
	ID        string  `json:"id" firestore:"id"`
	ProductID string  `json:"productId" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Image     string  `json:"image" firestore:"image"`
	UnitPrice float64 `json:"unitPrice" firestore:"unitPrice"`
	Qty       int     `json:"qty" firestore:"qty"`
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is created once at checkout and is immutable afterwards except for
// Status (advanced by backoffice action, not by this module's callers).
type Order struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"userId" firestore:"userId"`

	Items []ItemSnapshot `json:"items" firestore:"items"`
	Total float64        `json:"total" firestore:"total"`

	Status          Status  `json:"status" firestore:"status"`
	ShippingAddress Address `json:"shippingAddress" firestore:"shippingAddress"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

var (
	ErrInvalidID        = errors.New("order: invalid id")
	ErrInvalidUserID    = errors.New("order: invalid userId")
	ErrInvalidItems     = errors.New("order: invalid items")
	ErrInvalidTotal     = errors.New("order: invalid total")
	ErrInvalidStatus    = errors.New("order: invalid status")
	ErrInvalidAddress   = errors.New("order: invalid shippingAddress")
	ErrInvalidCreatedAt = errors.New("order: invalid createdAt")
)

// MinItemsRequired guards against empty orders.
var MinItemsRequired = 1

// New builds a validated pending Order. Total is derived from the items, not
// taken from the caller.
func New(id, userID string, items []ItemSnapshot, shipping Address, now time.Time) (Order, error) {
	o := Order{
		ID:              strings.TrimSpace(id),
		UserID:          strings.TrimSpace(userID),
		Items:           cloneItems(items),
		Status:          StatusPending,
		ShippingAddress: shipping,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	for _, it := range o.Items {
		o.Total += it.UnitPrice * float64(it.Qty)
	}
	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

// UpdateStatus advances the order status (backoffice path).
func (o *Order) UpdateStatus(s Status, now time.Time) error {
	if o == nil {
		return ErrInvalidID
	}
	if !s.Valid() {
		return ErrInvalidStatus
	}
	o.Status = s
	o.UpdatedAt = now.UTC()
	return nil
}

func (o *Order) validate() error {
	if o == nil || o.ID == "" {
		return ErrInvalidID
	}
	if o.UserID == "" {
		return ErrInvalidUserID
	}
	if len(o.Items) < MinItemsRequired {
		return ErrInvalidItems
	}
	for _, it := range o.Items {
		if strings.TrimSpace(it.ID) == "" || strings.TrimSpace(it.ProductID) == "" {
			return ErrInvalidItems
		}
		if it.Qty <= 0 || it.UnitPrice < 0 {
			return ErrInvalidItems
		}
	}
	if o.Total < 0 {
		return ErrInvalidTotal
	}
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	if len(o.ShippingAddress.MissingFields()) > 0 {
		return ErrInvalidAddress
	}
	if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
		return ErrInvalidCreatedAt
	}
	return nil
}

func cloneItems(src []ItemSnapshot) []ItemSnapshot {
	if len(src) == 0 {
		return []ItemSnapshot{}
	}
	cp := make([]ItemSnapshot, len(src))
	copy(cp, src)
	return cp
}
