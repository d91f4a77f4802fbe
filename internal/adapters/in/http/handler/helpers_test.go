package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/memory"
	usecase "storefront/internal/application/usecase"
	productdom "storefront/internal/domain/product"
	userdom "storefront/internal/domain/user"
)

var tNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testAPI wires the full route table over memory stores, the way the container
// does in production.
type testAPI struct {
	mux      *http.ServeMux
	products *memory.ProductRepositoryMem
	carts    *memory.CartRepositoryMem
	orders   *memory.OrderRepositoryMem
	users    *memory.UserRepositoryMem
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	a := &testAPI{
		mux:      http.NewServeMux(),
		products: memory.NewProductRepositoryMem(),
		carts:    memory.NewCartRepositoryMem(),
		orders:   memory.NewOrderRepositoryMem(),
		users:    memory.NewUserRepositoryMem(),
	}

	catalogUC := usecase.NewCatalogUsecase(a.products)
	cartUC := usecase.NewCartUsecase(a.carts, a.products)
	authUC := usecase.NewAuthUsecase(a.users)
	checkoutUC := usecase.NewCheckoutUsecase(a.carts, a.products, a.orders, a.users, nil)
	orderUC := usecase.NewOrderUsecase(a.orders)

	httpin.Register(a.mux, httpin.Deps{
		Catalog:  NewCatalogHandler(catalogUC, a.users),
		Auth:     NewAuthHandler(authUC),
		Cart:     NewCartHandler(cartUC),
		Checkout: NewCheckoutHandler(checkoutUC),
		Order:    NewOrderHandler(orderUC, a.users),
	})
	return a
}

func (a *testAPI) seedProduct(t *testing.T, id, name string, price float64, cat productdom.Category, stock int) productdom.Product {
	t.Helper()
	p, err := productdom.New(id, name, "desc for "+name, price, "https://img/"+id, cat, stock, tNow)
	require.NoError(t, err)
	created, err := a.products.Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func (a *testAPI) seedUser(t *testing.T, id, email, password string, isAdmin bool) userdom.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := userdom.New(id, email, "Test User", string(hash), isAdmin, tNow)
	require.NoError(t, err)
	created, err := a.users.Create(context.Background(), u)
	require.NoError(t, err)
	return created
}

// do performs a request against the mux. A non-empty userID is sent as the
// identity header; body (if any) is JSON-encoded.
func (a *testAPI) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
