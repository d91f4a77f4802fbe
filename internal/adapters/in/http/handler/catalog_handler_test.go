package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdom "storefront/internal/domain/product"
)

func TestCatalogList(t *testing.T) {
	a := newTestAPI(t)
	a.seedProduct(t, "p1", "iPhone 17 Pro", 2000000, productdom.CategoryElectronics, 25)
	a.seedProduct(t, "p2", "Coffee Maker", 89000, productdom.CategoryHome, 15)

	rec := a.do(t, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]productdom.Product](t, rec)
	assert.Len(t, got, 2)
}

func TestCatalogListWithFilters(t *testing.T) {
	a := newTestAPI(t)
	a.seedProduct(t, "p1", "iPhone 17 Pro", 2000000, productdom.CategoryElectronics, 25)
	a.seedProduct(t, "p2", "MacBook Air M2", 5000000, productdom.CategoryElectronics, 10)
	a.seedProduct(t, "p3", "Coffee Maker", 89000, productdom.CategoryHome, 15)

	rec := a.do(t, http.MethodGet, "/products?category=electronics&sortBy=price&sortOrder=desc", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]productdom.Product](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "MacBook Air M2", got[0].Name)

	rec = a.do(t, http.MethodGet, "/products?search=PHONE", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got = decodeBody[[]productdom.Product](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestCatalogListRejectsInvalidFilters(t *testing.T) {
	a := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodGet, "/products?category=gadgets", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodGet, "/products?minPrice=abc", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodGet, "/products?sortBy=popularity", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodGet, "/products?sortOrder=sideways", "", nil).Code)
}

func TestCatalogGetByID(t *testing.T) {
	a := newTestAPI(t)
	a.seedProduct(t, "p1", "Coffee Maker", 89000, productdom.CategoryHome, 15)

	rec := a.do(t, http.MethodGet, "/products/p1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[productdom.Product](t, rec)
	assert.Equal(t, "Coffee Maker", got.Name)

	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/products/ghost", "", nil).Code)
}

func TestCatalogCreateRequiresAdmin(t *testing.T) {
	a := newTestAPI(t)
	a.seedUser(t, "admin1", "admin@example.com", "admin123", true)
	a.seedUser(t, "u1", "user@example.com", "password123", false)

	body := map[string]any{
		"name": "Yoga Mat", "description": "Non-slip", "price": 15000.0,
		"image": "https://img/mat", "category": "sports", "stock": 50,
	}

	assert.Equal(t, http.StatusUnauthorized, a.do(t, http.MethodPost, "/products", "", body).Code)
	assert.Equal(t, http.StatusForbidden, a.do(t, http.MethodPost, "/products", "u1", body).Code)

	rec := a.do(t, http.MethodPost, "/products", "admin1", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody[productdom.Product](t, rec)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, productdom.CategorySports, got.Category)
}

func TestCatalogUpdate(t *testing.T) {
	a := newTestAPI(t)
	a.seedUser(t, "admin1", "admin@example.com", "admin123", true)
	a.seedProduct(t, "p1", "Coffee Maker", 89000, productdom.CategoryHome, 15)

	rec := a.do(t, http.MethodPut, "/products/p1", "admin1", map[string]any{"price": 79000.0})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[productdom.Product](t, rec)
	assert.Equal(t, 79000.0, got.Price)
	assert.Equal(t, "Coffee Maker", got.Name)

	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodPut, "/products/ghost", "admin1", map[string]any{"price": 1.0}).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodPut, "/products/p1", "admin1", map[string]any{"category": "gadgets"}).Code)
}

func TestCatalogDelete(t *testing.T) {
	a := newTestAPI(t)
	a.seedUser(t, "admin1", "admin@example.com", "admin123", true)
	a.seedProduct(t, "p1", "Coffee Maker", 89000, productdom.CategoryHome, 15)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodDelete, "/products/p1", "admin1", nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/products/p1", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodDelete, "/products/p1", "admin1", nil).Code)
}

func TestCatalogMethodNotAllowed(t *testing.T) {
	a := newTestAPI(t)
	assert.Equal(t, http.StatusMethodNotAllowed, a.do(t, http.MethodPatch, "/products", "", nil).Code)
}
