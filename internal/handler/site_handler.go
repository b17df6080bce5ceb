package handler

import (
	"errors"
	"net/http"

	"reddybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SiteHandler struct {
	svc    *service.SiteService
	logger *zap.Logger
}

func NewSiteHandler(svc *service.SiteService, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{svc: svc, logger: logger}
}

// SiteRequest is accepted as JSON or as a multipart form with an optional "logo" file.
type SiteRequest struct {
	Name        string `json:"name" form:"name"`
	DisplayName string `json:"display_name" form:"display_name"`
	URL         string `json:"url" form:"url"`
	ButtonColor string `json:"button_color" form:"button_color"`
	LogoURL     string `json:"logo_url" form:"logo_url"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.svc.ListAll()
	if err != nil {
		h.logger.Error("failed to list sites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

func (h *SiteHandler) Create(c *gin.Context) {
	in, closeLogo, ok := bindSite(c)
	if !ok {
		return
	}
	defer closeLogo()
	site, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, site)
}

func (h *SiteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, closeLogo, ok := bindSite(c)
	if !ok {
		return
	}
	defer closeLogo()
	site, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (h *SiteHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	site, err := h.svc.SetActive(id, *req.IsActive)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (h *SiteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok || !confirmed(c) {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SiteHandler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer f.Close()
	url, err := h.svc.UploadLogo(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *SiteHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSiteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidSite), errors.Is(err, service.ErrInvalidLogo):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLogoUpload):
		h.logger.Error("logo upload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload logo"})
	default:
		h.logger.Error("site operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save site"})
	}
}

// bindSite reads the form. The returned func closes the uploaded logo, if any.
func bindSite(c *gin.Context) (service.SiteInput, func(), bool) {
	noop := func() {}
	var req SiteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.SiteInput{}, noop, false
	}
	in := service.SiteInput{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		URL:         req.URL,
		ButtonColor: req.ButtonColor,
		LogoURL:     req.LogoURL,
	}
	if c.ContentType() != "multipart/form-data" {
		return in, noop, true
	}
	fh, err := c.FormFile("logo")
	if errors.Is(err, http.ErrMissingFile) {
		return in, noop, true
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.SiteInput{}, noop, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read logo"})
		return service.SiteInput{}, noop, false
	}
	in.Logo = f
	return in, func() { f.Close() }, true
}
