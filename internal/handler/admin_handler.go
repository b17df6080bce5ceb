package handler

import (
	"errors"
	"net/http"

	"reddybook/internal/domain"
	"reddybook/internal/middleware"
	"reddybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the dashboard and the admin directory.
type AdminHandler struct {
	svc       *service.AdminDirectoryService
	signInURL string
	logger    *zap.Logger
}

func NewAdminHandler(svc *service.AdminDirectoryService, signInURL string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, signInURL: signInURL, logger: logger}
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin moderator"`
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{
		"identity":    sess.Identity,
		"role":        middleware.GetAdmin(c).Role,
		"tabs":        domain.DashboardTabs,
		"default_tab": domain.DashboardTabs[0],
	})
}

func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.svc.List()
	if err != nil {
		h.logger.Error("failed to list admins", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load admin users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	admin, err := h.svc.Create(c.Request.Context(), req.Email, req.Password, req.Role, h.signInURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAuthorizationNotRecorded):
			h.logger.Error("admin identity left without role", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": service.ErrAuthorizationNotRecorded.Error(), "identity_created": true})
		default:
			h.logger.Error("failed to create admin", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin user"})
		}
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok || !confirmed(c) {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to delete admin", zap.Uint("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete admin user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Orphans lists identities that exist without an admin directory row.
func (h *AdminHandler) Orphans(c *gin.Context) {
	orphans, err := h.svc.Orphans()
	if err != nil {
		h.logger.Error("failed to list orphan identities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load identities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orphans": orphans})
}
