package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogcms/database"
	"blogcms/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) *models.User {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	SetJWTSecret("test-secret")

	user := &models.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestGenerateAndValidateToken(t *testing.T) {
	user := setupAuthTest(t)

	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateTokenExpired(t *testing.T) {
	user := setupAuthTest(t)

	token, err := GenerateToken(user, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := setupAuthTest(t)

	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	SetJWTSecret("another-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func authedEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(user.Username))
	})
}

func TestAuthMiddlewareBearerHeader(t *testing.T) {
	user := setupAuthTest(t)
	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(authedEcho()).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestAuthMiddlewareCookie(t *testing.T) {
	user := setupAuthTest(t)
	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()

	AuthMiddleware(authedEcho()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(authedEcho()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	AuthMiddleware(authedEcho()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	user := setupAuthTest(t)
	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	require.NoError(t, database.GetDB().Delete(user).Error)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(authedEcho()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
