// internal/adapters/in/http/handler/order_handler.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	usecase "storefront/internal/application/usecase"
	orderdom "storefront/internal/domain/order"
)

// OrderHandler serves order history and the admin status transition.
//
// Routes:
// - GET   /orders                    caller's orders, newest first
// - GET   /orders/{id}               one order (ownership enforced)
// - PATCH /orders/{id}/status        {status} (admin)
type OrderHandler struct {
	UC    *usecase.OrderUsecase
	Users userGetter
}

func NewOrderHandler(uc *usecase.OrderUsecase, users userGetter) http.Handler {
	return &OrderHandler{UC: uc, Users: users}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "order handler is not ready")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")

	if path == "/orders" {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		uid := currentUserID(r)
		if uid == "" {
			unauthorized(w, "missing "+headerUserID)
			return
		}
		orders, err := h.UC.ListForUser(r.Context(), uid)
		if err != nil {
			internalError(w, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, orders)
		return
	}

	rest := strings.TrimPrefix(path, "/orders/")
	if rest == path {
		notFound(w)
		return
	}

	// /orders/{id}/status
	if id, ok := strings.CutSuffix(rest, "/status"); ok {
		if r.Method != http.MethodPatch {
			methodNotAllowed(w)
			return
		}
		h.updateStatus(w, r, strings.TrimSpace(id))
		return
	}

	// /orders/{id}
	if strings.Contains(rest, "/") {
		notFound(w)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	uid := currentUserID(r)
	if uid == "" {
		unauthorized(w, "missing "+headerUserID)
		return
	}
	o, err := h.UC.GetForUser(r.Context(), uid, rest)
	if err != nil {
		switch {
		case errors.Is(err, orderdom.ErrNotFound):
			notFound(w)
		case errors.Is(err, usecase.ErrOrderForbidden):
			forbidden(w, "not your order")
		default:
			internalError(w, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type statusBody struct {
	Status string `json:"status"`
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request, id string) {
	if !requireAdmin(w, r, h.Users) {
		return
	}

	var body statusBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	o, err := h.UC.UpdateStatus(r.Context(), id, orderdom.Status(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, orderdom.ErrNotFound):
			notFound(w)
		case errors.Is(err, orderdom.ErrInvalidStatus):
			badRequest(w, err.Error())
		default:
			internalError(w, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, o)
}
