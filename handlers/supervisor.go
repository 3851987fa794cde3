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

type SupervisorHandler struct {
	config *config.Config
}

func NewSupervisorHandler(cfg *config.Config) *SupervisorHandler {
	return &SupervisorHandler{
		config: cfg,
	}
}

type supervisorRequest struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	WebsiteURL  string `json:"website_url"`
	TwitterURL  string `json:"twitter_url"`
	LinkedinURL string `json:"linkedin_url"`
	IsActive    *bool  `json:"is_active"`
}

// List returns the account's supervisors, newest first.
func (h *SupervisorHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var supervisors []models.Supervisor
	if err := database.GetDB().
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&supervisors).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"supervisors": supervisors})
}

func (h *SupervisorHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "supervisor not found")
		return
	}

	var supervisor models.Supervisor
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&supervisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "supervisor not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"supervisor": supervisor})
}

func (h *SupervisorHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req supervisorRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	supervisor := models.Supervisor{
		UserID:      user.ID,
		Name:        strings.TrimSpace(req.Name),
		Title:       req.Title,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
		WebsiteURL:  req.WebsiteURL,
		TwitterURL:  req.TwitterURL,
		LinkedinURL: req.LinkedinURL,
		IsActive:    true,
	}
	if err := database.GetDB().Create(&supervisor).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Re-read so the response carries store-assigned values
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", supervisor.ID, user.ID).
		First(&supervisor).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"supervisor": supervisor})
}

// Update overwrites every mutable field, including the active flag.
func (h *SupervisorHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "supervisor not found")
		return
	}

	var req supervisorRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var supervisor models.Supervisor
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&supervisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "supervisor not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	supervisor.Name = strings.TrimSpace(req.Name)
	supervisor.Title = req.Title
	supervisor.Description = req.Description
	supervisor.AvatarURL = req.AvatarURL
	supervisor.WebsiteURL = req.WebsiteURL
	supervisor.TwitterURL = req.TwitterURL
	supervisor.LinkedinURL = req.LinkedinURL
	if req.IsActive != nil {
		supervisor.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&supervisor).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Re-read so the response carries the refreshed update timestamp
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", supervisor.ID, user.ID).
		First(&supervisor).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"supervisor": supervisor})
}

// Delete removes a supervisor and, first, every association pointing at it.
func (h *SupervisorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, "supervisor not found")
		return
	}

	var supervisor models.Supervisor
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&supervisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "supervisor not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supervisor_id = ?", supervisor.ID).
			Delete(&models.ArticleSupervisor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&supervisor).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(w)
}

type setArticleSupervisorRequest struct {
	SupervisorID uint `json:"supervisor_id"`
}

// SetArticleSupervisor attaches a supervisor to an article, replacing any
// existing attachment. Both the article and the supervisor must belong to
// the calling account.
func (h *SupervisorHandler) SetArticleSupervisor(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	articleID, err := parseIDParam(r, "articleID")
	if err != nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}

	var req setArticleSupervisorRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SupervisorID == 0 {
		respondError(w, http.StatusBadRequest, "supervisor_id is required")
		return
	}

	var article models.Article
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", articleID, user.ID).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var supervisor models.Supervisor
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", req.SupervisorID, user.ID).
		First(&supervisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "supervisor not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Replace, never append: one supervisor per article
	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", article.ID).
			Delete(&models.ArticleSupervisor{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.ArticleSupervisor{
			ArticleID:    article.ID,
			SupervisorID: supervisor.ID,
		}).Error
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(w)
}

// UnsetArticleSupervisor detaches whatever supervisor the article has.
// Detaching an article with no attachment succeeds.
func (h *SupervisorHandler) UnsetArticleSupervisor(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	articleID, err := parseIDParam(r, "articleID")
	if err != nil {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}

	var article models.Article
	if err := database.GetDB().
		Where("id = ? AND user_id = ?", articleID, user.ID).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "article not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := database.GetDB().Where("article_id = ?", article.ID).
		Delete(&models.ArticleSupervisor{}).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondSuccess(w)
}

// GetArticleSupervisor is the one public read: the active supervisor
// attached to an article, or null. Absence is a normal outcome, never 404.
func (h *SupervisorHandler) GetArticleSupervisor(w http.ResponseWriter, r *http.Request) {
	articleID, err := parseIDParam(r, "articleID")
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"supervisor": nil})
		return
	}

	var assoc models.ArticleSupervisor
	if err := database.GetDB().
		Where("article_id = ?", articleID).
		First(&assoc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondJSON(w, http.StatusOK, map[string]interface{}{"supervisor": nil})
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var supervisor models.Supervisor
	if err := database.GetDB().
		Where("id = ? AND is_active = ?", assoc.SupervisorID, true).
		First(&supervisor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondJSON(w, http.StatusOK, map[string]interface{}{"supervisor": nil})
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"supervisor": supervisor})
}
