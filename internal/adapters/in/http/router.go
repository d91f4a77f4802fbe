// internal/adapters/in/http/router.go
package httpin

import (
	"log"
	"net/http"
)

// Deps is the storefront handler set.
type Deps struct {
	Catalog  http.Handler
	Auth     http.Handler
	Cart     http.Handler
	Checkout http.Handler
	Order    http.Handler
}

// handleSafe registers pattern with h.
// If h is nil, it logs and registers NotFoundHandler instead (so a partial
// container never crashes the server).
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register registers all storefront routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	// catalog
	handleSafe(mux, "/products", deps.Catalog, "Catalog")
	handleSafe(mux, "/products/", deps.Catalog, "Catalog")

	// auth
	handleSafe(mux, "/auth/", deps.Auth, "Auth")

	// cart
	handleSafe(mux, "/cart", deps.Cart, "Cart")
	handleSafe(mux, "/cart/", deps.Cart, "Cart")

	// checkout
	handleSafe(mux, "/checkout", deps.Checkout, "Checkout")

	// orders
	handleSafe(mux, "/orders", deps.Order, "Order")
	handleSafe(mux, "/orders/", deps.Order, "Order")

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
