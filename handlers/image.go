package handlers

import (
	"net/http"
	"strings"

	"blogcms/config"
	"blogcms/database"
	"blogcms/middleware"
	"blogcms/models"

	"github.com/google/uuid"
)

type ImageHandler struct {
	config *config.Config
}

func NewImageHandler(cfg *config.Config) *ImageHandler {
	return &ImageHandler{
		config: cfg,
	}
}

type imageRequest struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	AltText  string `json:"alt_text"`
}

func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var images []models.Image
	if err := database.GetDB().
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&images).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"images": images})
}

func (h *ImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req imageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Filename) == "" {
		respondError(w, http.StatusBadRequest, "filename is required")
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	image := models.Image{
		UserID:     user.ID,
		StorageKey: uuid.NewString(),
		Filename:   strings.TrimSpace(req.Filename),
		URL:        strings.TrimSpace(req.URL),
		AltText:    req.AltText,
	}
	if err := database.GetDB().Create(&image).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"image": image})
}

func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "image not found")
		return
	}

	result := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Image{})
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "image not found")
		return
	}

	respondSuccess(w)
}
