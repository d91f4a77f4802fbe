// internal/adapters/in/http/handler/auth_handler.go
package handler

import (
	"net/http"
	"strings"

	usecase "storefront/internal/application/usecase"
)

// AuthHandler serves login/register/logout.
//
// Routes:
// - POST /auth/login    {email, password}          -> User or 401
// - POST /auth/register {email, password, name}    -> User or 409
// - POST /auth/logout
type AuthHandler struct {
	UC *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) http.Handler {
	return &AuthHandler{UC: uc}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.UC == nil {
		internalError(w, "auth handler is not ready")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	switch strings.TrimSuffix(r.URL.Path, "/") {
	case "/auth/login":
		h.login(w, r)
	case "/auth/register":
		h.register(w, r)
	case "/auth/logout":
		h.UC.Logout()
		writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
	default:
		notFound(w)
	}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	u, ok, err := h.UC.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if !ok {
		unauthorized(w, "invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	u, ok, err := h.UC.Register(r.Context(), body.Email, body.Password, body.Name)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if !ok {
		conflict(w, "email already registered")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}
