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

type KeywordHandler struct {
	config *config.Config
}

func NewKeywordHandler(cfg *config.Config) *KeywordHandler {
	return &KeywordHandler{
		config: cfg,
	}
}

type keywordRequest struct {
	Keyword string `json:"keyword"`
	Prompt  string `json:"prompt"`
	Used    *bool  `json:"used"`
}

func (h *KeywordHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var keywords []models.Keyword
	if err := database.GetDB().
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&keywords).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"keywords": keywords})
}

func (h *KeywordHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "keyword not found")
		return
	}

	var keyword models.Keyword
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&keyword).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "keyword not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"keyword": keyword})
}

func (h *KeywordHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req keywordRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Keyword) == "" {
		respondError(w, http.StatusBadRequest, "keyword is required")
		return
	}

	keyword := models.Keyword{
		UserID:  user.ID,
		Keyword: strings.TrimSpace(req.Keyword),
		Prompt:  req.Prompt,
	}
	if err := database.GetDB().Create(&keyword).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"keyword": keyword})
}

func (h *KeywordHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "keyword not found")
		return
	}

	var req keywordRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var keyword models.Keyword
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&keyword).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "keyword not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if strings.TrimSpace(req.Keyword) == "" {
		respondError(w, http.StatusBadRequest, "keyword is required")
		return
	}

	keyword.Keyword = strings.TrimSpace(req.Keyword)
	keyword.Prompt = req.Prompt
	if req.Used != nil {
		keyword.Used = *req.Used
	}

	if err := database.GetDB().Save(&keyword).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"keyword": keyword})
}

func (h *KeywordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "keyword not found")
		return
	}

	var keyword models.Keyword
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&keyword).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "keyword not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Articles keep their keyword_id; the reference just dangles into a
	// soft-deleted row rather than blocking the delete
	if err := database.GetDB().Delete(&keyword).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(w)
}
