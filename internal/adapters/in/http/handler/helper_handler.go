// internal/adapters/in/http/handler/helper_handler.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	userdom "storefront/internal/domain/user"
)

// userGetter is the read-only user lookup handlers need for identity/admin
// checks.
type userGetter interface {
	GetByID(ctx context.Context, id string) (userdom.User, error)
}

// headerUserID identifies the caller. Token transport is out of scope; the
// identity header keeps the auth gate observable.
const headerUserID = "X-User-ID"

func currentUserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerUserID))
}

// requireAdmin resolves the caller and checks the admin flag.
// Writes the error response itself and returns false when the gate fails.
func requireAdmin(w http.ResponseWriter, r *http.Request, users userGetter) bool {
	uid := currentUserID(r)
	if uid == "" {
		unauthorized(w, "missing "+headerUserID)
		return false
	}
	u, err := users.GetByID(r.Context(), uid)
	if err != nil {
		unauthorized(w, "unknown user")
		return false
	}
	if !u.IsAdmin {
		forbidden(w, "admin only")
		return false
	}
	return true
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorBody{Error: msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func unauthorized(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusUnauthorized, msg)
}

func forbidden(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusForbidden, msg)
}

func conflict(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusConflict, msg)
}

func internalError(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusInternalServerError, msg)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
