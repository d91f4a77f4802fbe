// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	productdom "storefront/internal/domain/product"
)

var ErrCatalogInvalidArgument = errors.New("catalog_usecase: invalid argument")

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CatalogUsecase coordinates product catalog operations.
type CatalogUsecase struct {
	repo  productdom.Repository
	clock Clock
	newID func() string
}

func NewCatalogUsecase(repo productdom.Repository) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		clock: systemClock{},
		newID: uuid.NewString,
	}
}

// NewCatalogUsecaseWithClock is useful for tests.
func NewCatalogUsecaseWithClock(repo productdom.Repository, clock Clock, newID func() string) *CatalogUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &CatalogUsecase{repo: repo, clock: clock, newID: newID}
}

// List returns the full authoritative product set.
func (uc *CatalogUsecase) List(ctx context.Context) ([]productdom.Product, error) {
	return uc.repo.List(ctx)
}

// FilteredView applies filters to the current catalog and returns the derived
// view. It is recomputed from the authoritative list on every call, so list
// mutations are immediately visible (no manual invalidation).
func (uc *CatalogUsecase) FilteredView(ctx context.Context, filters productdom.Filters) ([]productdom.Product, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filters.Apply(all), nil
}

// CreateProductInput is the app-level input for Add.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    productdom.Category
	Stock       int
}

// Add assigns a fresh id and current timestamps, appends, and returns the
// created product.
func (uc *CatalogUsecase) Add(ctx context.Context, in CreateProductInput) (productdom.Product, error) {
	now := uc.clock.Now()
	p, err := productdom.New(uc.newID(), in.Name, in.Description, in.Price, in.Image, in.Category, in.Stock, now)
	if err != nil {
		return productdom.Product{}, err
	}
	return uc.repo.Create(ctx, p)
}

// Update merges patch fields and refreshes updatedAt.
// Returns product.ErrNotFound if id is absent.
func (uc *CatalogUsecase) Update(ctx context.Context, id string, patch productdom.Patch) (productdom.Product, error) {
	pid := strings.TrimSpace(id)
	if pid == "" {
		return productdom.Product{}, ErrCatalogInvalidArgument
	}

	p, err := uc.repo.GetByID(ctx, pid)
	if err != nil {
		return productdom.Product{}, err
	}
	if err := p.ApplyPatch(patch, uc.clock.Now()); err != nil {
		return productdom.Product{}, err
	}
	return uc.repo.Save(ctx, p)
}

// Remove deletes a product. Returns product.ErrNotFound if id is absent.
func (uc *CatalogUsecase) Remove(ctx context.Context, id string) error {
	pid := strings.TrimSpace(id)
	if pid == "" {
		return ErrCatalogInvalidArgument
	}
	return uc.repo.Delete(ctx, pid)
}

// Get is a point lookup with no side effect.
func (uc *CatalogUsecase) Get(ctx context.Context, id string) (productdom.Product, error) {
	pid := strings.TrimSpace(id)
	if pid == "" {
		return productdom.Product{}, ErrCatalogInvalidArgument
	}
	return uc.repo.GetByID(ctx, pid)
}
