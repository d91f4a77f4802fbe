// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

// Category is the fixed set of catalog categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
	CategoryBeauty      Category = "beauty"
	CategoryToys        Category = "toys"
	CategoryFood        Category = "food"
)

// Categories lists every valid category (stable order, for validation and UIs).
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHome,
	CategorySports,
	CategoryBeauty,
	CategoryToys,
	CategoryFood,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Product is the catalog entity. It is owned by the catalog store and mutated
// only through explicit update operations (including the stock decrement at
// checkout); it is never deleted implicitly.
type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	Image       string    `json:"image" firestore:"image"`
	Category    Category  `json:"category" firestore:"category"`
	Stock       int       `json:"stock" firestore:"stock"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Patch represents partial updates to Product fields.
// A nil field means "no change".
type Patch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Category    *Category
	Stock       *int
}

var (
	ErrInvalidID        = errors.New("product: invalid id")
	ErrInvalidName      = errors.New("product: invalid name")
	ErrInvalidPrice     = errors.New("product: invalid price")
	ErrInvalidCategory  = errors.New("product: invalid category")
	ErrInvalidStock     = errors.New("product: invalid stock")
	ErrInvalidCreatedAt = errors.New("product: invalid createdAt")
)

// New builds a validated Product.
// id must be pre-assigned by the caller (store/usecase); timestamps come from now.
func New(id, name, description string, price float64, image string, category Category, stock int, now time.Time) (Product, error) {
	p := Product{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		Image:       strings.TrimSpace(image),
		Category:    category,
		Stock:       stock,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// ApplyPatch merges non-nil patch fields and refreshes UpdatedAt.
func (p *Product) ApplyPatch(patch Patch, now time.Time) error {
	if p == nil {
		return ErrInvalidID
	}
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	p.UpdatedAt = now.UTC()
	return p.Validate()
}

// DecrementStock subtracts qty and refreshes UpdatedAt.
// qty must be between 1 and the current stock.
func (p *Product) DecrementStock(qty int, now time.Time) error {
	if p == nil {
		return ErrInvalidID
	}
	if qty <= 0 || qty > p.Stock {
		return ErrInvalidStock
	}
	p.Stock -= qty
	p.UpdatedAt = now.UTC()
	return nil
}

func (p *Product) Validate() error {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if !p.Category.Valid() {
		return ErrInvalidCategory
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		return ErrInvalidCreatedAt
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return ErrInvalidCreatedAt
	}
	return nil
}
