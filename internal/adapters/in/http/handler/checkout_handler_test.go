package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

func checkoutBodyWith(addr map[string]string) map[string]any {
	return map[string]any{"shippingAddress": addr}
}

func fullAddress() map[string]string {
	return map[string]string{
		"street": "123 Main St", "city": "Springfield", "state": "IL",
		"zipCode": "62701", "country": "USA",
	}
}

func TestCheckoutEndpointHappyPath(t *testing.T) {
	a := newTestAPI(t)
	a.seedUser(t, "u1", "user@example.com", "password123", false)
	a.seedProduct(t, "p1", "iPhone 17 Pro", 2000000, productdom.CategoryElectronics, 25)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/cart/items", "u1", map[string]any{"productId": "p1", "quantity": 2}).Code)

	rec := a.do(t, http.MethodPost, "/checkout", "u1", checkoutBodyWith(fullAddress()))
	require.Equal(t, http.StatusCreated, rec.Code)
	o := decodeBody[orderdom.Order](t, rec)
	assert.Equal(t, orderdom.StatusPending, o.Status)
	assert.Equal(t, 4000000.0, o.Total)

	// stock decremented, cart now empty
	prodRec := a.do(t, http.MethodGet, "/products/p1", "", nil)
	require.Equal(t, http.StatusOK, prodRec.Code)
	assert.Equal(t, 23, decodeBody[productdom.Product](t, prodRec).Stock)

	cartRec := a.do(t, http.MethodGet, "/cart", "u1", nil)
	require.Equal(t, http.StatusOK, cartRec.Code)
	assert.Empty(t, decodeBody[cartdom.Cart](t, cartRec).Lines)
}

func TestCheckoutEndpointMissingAddress(t *testing.T) {
	a := newTestAPI(t)
	a.seedProduct(t, "p1", "Coffee Maker", 89000, productdom.CategoryHome, 15)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/cart/items", "u1", map[string]any{"productId": "p1", "quantity": 1}).Code)

	addr := fullAddress()
	addr["zipCode"] = ""
	rec := a.do(t, http.MethodPost, "/checkout", "u1", checkoutBodyWith(addr))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "zipCode")
}

func TestCheckoutEndpointInsufficientStock(t *testing.T) {
	a := newTestAPI(t)
	a.seedProduct(t, "p1", "iPhone 17 Pro", 2000000, productdom.CategoryElectronics, 25)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/cart/items", "u1", map[string]any{"productId": "p1", "quantity": 100}).Code)

	rec := a.do(t, http.MethodPost, "/checkout", "u1", checkoutBodyWith(fullAddress()))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "iPhone 17 Pro")

	// cart kept for correction
	cartRec := a.do(t, http.MethodGet, "/cart", "u1", nil)
	require.Equal(t, http.StatusOK, cartRec.Code)
	assert.Len(t, decodeBody[cartdom.Cart](t, cartRec).Lines, 1)
}

func TestCheckoutEndpointEmptyCart(t *testing.T) {
	a := newTestAPI(t)
	rec := a.do(t, http.MethodPost, "/checkout", "u1", checkoutBodyWith(fullAddress()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutEndpointRequiresIdentity(t *testing.T) {
	a := newTestAPI(t)
	rec := a.do(t, http.MethodPost, "/checkout", "", checkoutBodyWith(fullAddress()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
