package handler

import (
	"errors"
	"net/http"

	"reddybook/internal/intake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntakeHandler serves the public lead form. The client sends what it has
// collected so far and each call replays the flow up to its step.
type IntakeHandler struct {
	svc    *intake.Service
	logger *zap.Logger
}

func NewIntakeHandler(svc *intake.Service, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{svc: svc, logger: logger}
}

type IntakeRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Site   string `json:"site"`
}

func (h *IntakeHandler) Sites(c *gin.Context) {
	sites, fallback := h.svc.Sites()
	c.JSON(http.StatusOK, gin.H{"sites": sites, "fallback": fallback})
}

func (h *IntakeHandler) Name(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f := intake.NewFlow()
	if err := f.SubmitName(req.Name); err != nil {
		stay(c, f, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": f.Step})
}

func (h *IntakeHandler) Mobile(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, ok := replay(c, req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": f.Step})
}

func (h *IntakeHandler) Submit(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, ok := replay(c, req)
	if !ok {
		return
	}
	site, found := h.svc.FindSite(req.Site)
	if !found {
		stay(c, f, intake.ErrUnknownSite)
		return
	}
	link, err := h.svc.Commit(f, site)
	if err != nil {
		h.logger.Error("failed to record submission", zap.String("site", site.Label()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit. Please try again.", "step": f.Step})
		return
	}
	c.JSON(http.StatusOK, gin.H{"whatsapp_url": link, "step": f.Step})
}

type BackRequest struct {
	Step intake.Step `json:"step" binding:"required,min=1,max=3"`
}

func (h *IntakeHandler) Back(c *gin.Context) {
	var req BackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f := &intake.Flow{Step: req.Step}
	f.Back()
	c.JSON(http.StatusOK, gin.H{"step": f.Step})
}

// replay runs the name and mobile steps, answering 422 on the first that fails.
func replay(c *gin.Context, req IntakeRequest) (*intake.Flow, bool) {
	f := intake.NewFlow()
	if err := f.SubmitName(req.Name); err != nil {
		stay(c, f, err)
		return nil, false
	}
	if err := f.SubmitMobile(req.Mobile); err != nil {
		stay(c, f, err)
		return nil, false
	}
	return f, true
}

func stay(c *gin.Context, f *intake.Flow, err error) {
	status := http.StatusUnprocessableEntity
	if !errors.Is(err, intake.ErrNameRequired) && !errors.Is(err, intake.ErrInvalidMobile) && !errors.Is(err, intake.ErrUnknownSite) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error(), "step": f.Step})
}
