package numbersvc

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"reddybook/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store  Store
	secret string
	logger *zap.Logger
}

func NewHandler(store Store, secret string, logger *zap.Logger) *Handler {
	return &Handler{store: store, secret: secret, logger: logger}
}

type UpdateRequest struct {
	Number   string `json:"number"`
	Password string `json:"password"`
}

func (h *Handler) Get(c *gin.Context) {
	number, found, err := h.store.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to read number", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"number": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": number})
}

// Update checks the secret before touching the store.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !h.authorized(req.Password) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}
	number := strings.TrimSpace(req.Number)
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Number is required"})
		return
	}
	if err := h.store.Set(c.Request.Context(), number); err != nil {
		h.logger.Error("failed to update number", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// authorized compares in constant time. An unset secret accepts nothing.
func (h *Handler) authorized(password string) bool {
	if h.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(h.secret)) == 1
}

// CORS allows any origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORS())
	r.Use(middleware.RequestLogger(logger))
	r.GET("/whatsapp", h.Get)
	r.POST("/whatsapp", h.Update)
	r.OPTIONS("/whatsapp", func(c *gin.Context) {})
	return r
}
