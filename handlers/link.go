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

type LinkHandler struct {
	config *config.Config
}

func NewLinkHandler(cfg *config.Config) *LinkHandler {
	return &LinkHandler{
		config: cfg,
	}
}

type linkRequest struct {
	Keyword   string `json:"keyword"`
	TargetURL string `json:"target_url"`
}

func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var links []models.InternalLink
	if err := database.GetDB().
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&links).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"links": links})
}

func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req linkRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Keyword) == "" {
		respondError(w, http.StatusBadRequest, "keyword is required")
		return
	}
	if strings.TrimSpace(req.TargetURL) == "" {
		respondError(w, http.StatusBadRequest, "target_url is required")
		return
	}

	link := models.InternalLink{
		UserID:    user.ID,
		Keyword:   strings.TrimSpace(req.Keyword),
		TargetURL: strings.TrimSpace(req.TargetURL),
	}
	if err := database.GetDB().Create(&link).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"link": link})
}

func (h *LinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "link not found")
		return
	}

	var req linkRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var link models.InternalLink
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "link not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if strings.TrimSpace(req.Keyword) == "" {
		respondError(w, http.StatusBadRequest, "keyword is required")
		return
	}
	if strings.TrimSpace(req.TargetURL) == "" {
		respondError(w, http.StatusBadRequest, "target_url is required")
		return
	}

	link.Keyword = strings.TrimSpace(req.Keyword)
	link.TargetURL = strings.TrimSpace(req.TargetURL)

	if err := database.GetDB().Save(&link).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"link": link})
}

func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "link not found")
		return
	}

	result := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.InternalLink{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "link not found")
		return
	}

	respondSuccess(w)
}
