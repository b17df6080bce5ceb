package handler

import (
	"net/http"

	"reddybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingHandler struct {
	svc    *service.SettingService
	logger *zap.Logger
}

func NewSettingHandler(svc *service.SettingService, logger *zap.Logger) *SettingHandler {
	return &SettingHandler{svc: svc, logger: logger}
}

type WhatsAppRequest struct {
	Number string `json:"number"`
}

func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.svc.All()
	if err != nil {
		h.logger.Error("failed to list settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingHandler) GetWhatsApp(c *gin.Context) {
	number, err := h.svc.WhatsAppNumber()
	if err != nil {
		h.logger.Error("failed to load whatsapp number", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": number})
}

func (h *SettingHandler) UpdateWhatsApp(c *gin.Context) {
	var req WhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	number, err := h.svc.SetWhatsAppNumber(req.Number)
	if err != nil {
		h.logger.Error("failed to save whatsapp number", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update WhatsApp number"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": number})
}
