// internal/adapters/in/http/handler/checkout_handler.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	usecase "storefront/internal/application/usecase"
	orderdom "storefront/internal/domain/order"
)

// CheckoutHandler places an order for the caller's cart.
//
// Routes:
// - POST /checkout {shippingAddress: {street, city, state, zipCode, country}}
//
// Failure mapping (all user-recoverable, never a crash):
// - missing address fields      -> 400 + field list
// - quantity exceeds stock      -> 409 + offending product
// - duplicate submission        -> 409
// - empty cart                  -> 400
type CheckoutHandler struct {
	UC *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{UC: uc}
}

type checkoutBody struct {
	ShippingAddress orderdom.Address `json:"shippingAddress"`
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "checkout handler is not ready")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if strings.TrimSuffix(r.URL.Path, "/") != "/checkout" {
		notFound(w)
		return
	}

	uid := currentUserID(r)
	if uid == "" {
		unauthorized(w, "missing "+headerUserID)
		return
	}

	var body checkoutBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	o, err := h.UC.PlaceOrder(r.Context(), uid, body.ShippingAddress)
	if err != nil {
		var vErr *usecase.ValidationError
		var sErr *usecase.InsufficientStockError
		switch {
		case errors.As(err, &vErr):
			badRequest(w, vErr.Error())
		case errors.As(err, &sErr):
			conflict(w, sErr.Error())
		case errors.Is(err, usecase.ErrCheckoutInFlight):
			conflict(w, err.Error())
		case errors.Is(err, usecase.ErrCheckoutCartEmpty):
			badRequest(w, err.Error())
		default:
			internalError(w, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
