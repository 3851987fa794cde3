package handlers

import (
	"errors"
	"net/http"
	"strings"

	"blogcms/config"
	"blogcms/database"
	"blogcms/middleware"
	"blogcms/models"

	"gorm.io/gorm"
)

type ArticleHandler struct {
	config *config.Config
}

func NewArticleHandler(cfg *config.Config) *ArticleHandler {
	return &ArticleHandler{
		config: cfg,
	}
}

type articleRequest struct {
	Title     string                `json:"title"`
	Slug      string                `json:"slug"`
	Content   string                `json:"content"`
	Status    *models.ArticleStatus `json:"status"`
	KeywordID *uint                 `json:"keyword_id"`
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var articles []models.Article
	if err := database.GetDB().
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&articles).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}

	var article models.Article
	if err := database.GetDB().
		Preload("Keyword").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"article": article})
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req articleRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	status := models.ArticleDraft
	if req.Status != nil {
		if !req.Status.Valid() {
			respondError(w, http.StatusBadRequest, "status must be draft or published")
			return
		}
		status = *req.Status
	}

	if req.KeywordID != nil {
		if !h.keywordOwned(user.ID, *req.KeywordID) {
			respondError(w, http.StatusNotFound, "keyword not found")
			return
		}
	}

	article := models.Article{
		UserID:    user.ID,
		Title:     strings.TrimSpace(req.Title),
		Slug:      req.Slug,
		Content:   req.Content,
		Status:    status,
		KeywordID: req.KeywordID,
	}
	if err := database.GetDB().Create(&article).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"article": article})
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}

	var req articleRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var article models.Article
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			respondError(w, http.StatusBadRequest, "status must be draft or published")
			return
		}
		article.Status = *req.Status
	}
	if req.KeywordID != nil && !h.keywordOwned(user.ID, *req.KeywordID) {
		respondError(w, http.StatusNotFound, "keyword not found")
		return
	}

	article.Title = strings.TrimSpace(req.Title)
	article.Slug = req.Slug
	article.Content = req.Content
	article.KeywordID = req.KeywordID

	if err := database.GetDB().Save(&article).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"article": article})
}

// Delete removes an article together with its supervisor association.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}

	var article models.Article
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", article.ID).
			Delete(&models.ArticleSupervisor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(w)
}

func (h *ArticleHandler) keywordOwned(userID, keywordID uint) bool {
	var count int64
	database.GetDB().Model(&models.Keyword{}).
		Where("id = ? AND user_id = ?", keywordID, userID).
		Count(&count)
	return count > 0
}
