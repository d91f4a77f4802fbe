// internal/adapters/in/http/handler/cart_handler.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	usecase "storefront/internal/application/usecase"
	productdom "storefront/internal/domain/product"
)

// CartHandler serves the caller's cart (identity via X-User-ID).
//
// Routes:
// - GET    /cart                      current cart (created empty when absent)
// - POST   /cart/items                {productId, quantity} add/increment
// - PATCH  /cart/items                {productId, quantity} set qty (<=0 removes)
// - DELETE /cart/items/{productId}    remove one line
// - DELETE /cart                      clear
type CartHandler struct {
	UC *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{UC: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "cart handler is not ready")
		return
	}

	uid := currentUserID(r)
	if uid == "" {
		unauthorized(w, "missing "+headerUserID)
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	switch {
	case path == "/cart" && r.Method == http.MethodGet:
		c, err := h.UC.GetOrCreate(r.Context(), uid)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, c)

	case path == "/cart" && r.Method == http.MethodDelete:
		if err := h.UC.Clear(r.Context(), uid); err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})

	case path == "/cart/items" && r.Method == http.MethodPost:
		h.addItem(w, r, uid)

	case path == "/cart/items" && r.Method == http.MethodPatch:
		h.setQty(w, r, uid)

	case strings.HasPrefix(path, "/cart/items/") && r.Method == http.MethodDelete:
		pid := strings.TrimSpace(strings.TrimPrefix(path, "/cart/items/"))
		if pid == "" {
			notFound(w)
			return
		}
		c, err := h.UC.RemoveItem(r.Context(), uid, pid)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, c)

	default:
		methodNotAllowed(w)
	}
}

type cartItemBody struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, uid string) {
	var body cartItemBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	qty := body.Quantity
	if qty == 0 {
		qty = 1 // addToCart default
	}

	c, err := h.UC.AddItem(r.Context(), uid, body.ProductID, qty)
	if err != nil {
		switch {
		case errors.Is(err, productdom.ErrNotFound):
			notFound(w)
		case errors.Is(err, usecase.ErrCartInvalidArgument):
			badRequest(w, err.Error())
		default:
			internalError(w, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) setQty(w http.ResponseWriter, r *http.Request, uid string) {
	var body cartItemBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	c, err := h.UC.SetItemQty(r.Context(), uid, body.ProductID, body.Quantity)
	if err != nil {
		if errors.Is(err, usecase.ErrCartInvalidArgument) {
			badRequest(w, err.Error())
			return
		}
		internalError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}
