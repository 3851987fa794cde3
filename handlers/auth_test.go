package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username":  "writer",
		"password":  "secret1",
		"full_name": "The Writer",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeResponse(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "writer", user["username"])
	_, exposed := user["password_hash"]
	assert.False(t, exposed)

	// The issued token works
	rec = doJSON(t, router, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeResponse(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "writer", me["username"])

	// And so does a fresh login
	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "writer",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeResponse(t, rec)["token"])
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "ab",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "writer",
		"password": "shrt",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := newTestRouter(t)
	createTestUser(t, "writer")

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "writer",
		"password": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeResponse(t, rec)["error"], "exists")
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t)
	createTestUser(t, "writer")

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "writer",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "nobody",
		"password": "password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword(t *testing.T) {
	router := newTestRouter(t)
	user := createTestUser(t, "writer")
	token := tokenFor(t, user)

	rec := doJSON(t, router, http.MethodPost, "/auth/change-password", token, map[string]interface{}{
		"current_password": "wrong",
		"new_password":     "fresh-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/change-password", token, map[string]interface{}{
		"current_password": "password",
		"new_password":     "fresh-secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Old password no longer works, new one does
	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "writer",
		"password": "password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "writer",
		"password": "fresh-secret",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
