package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdom "storefront/internal/domain/user"
)

func TestAuthLoginEndpoint(t *testing.T) {
	a := newTestAPI(t)
	a.seedUser(t, "u1", "user@example.com", "password123", false)

	rec := a.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "user@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[userdom.User](t, rec)
	assert.Equal(t, "u1", got.ID)
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = a.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "user@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRegisterEndpoint(t *testing.T) {
	a := newTestAPI(t)

	body := map[string]string{"email": "new@example.com", "password": "secret123", "name": "New User"}

	rec := a.do(t, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody[userdom.User](t, rec)
	assert.Equal(t, "new@example.com", got.Email)
	assert.False(t, got.IsAdmin)

	// duplicate email
	rec = a.do(t, http.MethodPost, "/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthLogoutEndpoint(t *testing.T) {
	a := newTestAPI(t)
	assert.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/auth/logout", "", nil).Code)
}

func TestAuthRejectsNonPost(t *testing.T) {
	a := newTestAPI(t)
	assert.Equal(t, http.StatusMethodNotAllowed, a.do(t, http.MethodGet, "/auth/login", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodPost, "/auth/refresh", "", nil).Code)
}
