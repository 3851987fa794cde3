package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogcms/config"
	"blogcms/database"
	"blogcms/middleware"
	"blogcms/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the API against a fresh in-memory database. Tests
// share the package-level database handle, so they must not run parallel.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	middleware.SetJWTSecret("test-secret")
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiration: time.Hour,
	}

	authHandler := NewAuthHandler(cfg)
	supervisorHandler := NewSupervisorHandler(cfg)
	articleHandler := NewArticleHandler(cfg)
	keywordHandler := NewKeywordHandler(cfg)
	linkHandler := NewLinkHandler(cfg)
	imageHandler := NewImageHandler(cfg)

	router := chi.NewRouter()

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)
	router.Get("/supervisors/article/{articleID}", supervisorHandler.GetArticleSupervisor)

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/auth/me", authHandler.Me)
		r.Post("/auth/logout", authHandler.Logout)
		r.Post("/auth/change-password", authHandler.ChangePassword)

		r.Get("/supervisors", supervisorHandler.List)
		r.Post("/supervisors", supervisorHandler.Create)
		r.Get("/supervisors/{id}", supervisorHandler.Get)
		r.Put("/supervisors/{id}", supervisorHandler.Update)
		r.Delete("/supervisors/{id}", supervisorHandler.Delete)
		r.Post("/supervisors/article/{articleID}", supervisorHandler.SetArticleSupervisor)
		r.Delete("/supervisors/article/{articleID}", supervisorHandler.UnsetArticleSupervisor)

		r.Get("/articles", articleHandler.List)
		r.Post("/articles", articleHandler.Create)
		r.Get("/articles/{id}", articleHandler.Get)
		r.Put("/articles/{id}", articleHandler.Update)
		r.Delete("/articles/{id}", articleHandler.Delete)

		r.Get("/keywords", keywordHandler.List)
		r.Post("/keywords", keywordHandler.Create)
		r.Get("/keywords/{id}", keywordHandler.Get)
		r.Put("/keywords/{id}", keywordHandler.Update)
		r.Delete("/keywords/{id}", keywordHandler.Delete)

		r.Get("/links", linkHandler.List)
		r.Post("/links", linkHandler.Create)
		r.Put("/links/{id}", linkHandler.Update)
		r.Delete("/links/{id}", linkHandler.Delete)

		r.Get("/images", imageHandler.List)
		r.Post("/images", imageHandler.Create)
		r.Delete("/images/{id}", imageHandler.Delete)
	})

	return router
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	require.NoError(t, database.GetDB().Create(user).Error)
	return user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := middleware.GenerateToken(user, time.Hour)
	require.NoError(t, err)
	return token
}

// doJSON issues a request against the router. An empty token leaves the
// request unauthenticated.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createTestArticle(t *testing.T, user *models.User, title string) *models.Article {
	t.Helper()

	article := &models.Article{
		UserID: user.ID,
		Title:  title,
		Status: models.ArticleDraft,
	}
	require.NoError(t, database.GetDB().Create(article).Error)
	return article
}

func createTestSupervisor(t *testing.T, user *models.User, name string) *models.Supervisor {
	t.Helper()

	supervisor := &models.Supervisor{
		UserID:   user.ID,
		Name:     name,
		IsActive: true,
	}
	require.NoError(t, database.GetDB().Create(supervisor).Error)
	return supervisor
}
