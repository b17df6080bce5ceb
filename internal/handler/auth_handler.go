package handler

import (
	"errors"
	"net/http"

	"reddybook/internal/middleware"
	"reddybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	identities service.IdentityProvider
	signInURL  string
	logger     *zap.Logger
}

// NewAuthHandler links account mail to signInURL, never to anything taken from the request.
func NewAuthHandler(identities service.IdentityProvider, signInURL string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{identities: identities, signInURL: signInURL, logger: logger}
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	identity, err := h.identities.SignUp(c.Request.Context(), req.Email, req.Password, h.signInURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("sign-up failed", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-up failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": identity, "message": "Check your email for the confirmation link."})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.identities.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("sign-in failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	sess := middleware.GetSession(c)
	if err := h.identities.SignOut(c.Request.Context(), sess.ID); err != nil {
		h.logger.Error("sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": middleware.LoginPath})
}

func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetSession(c))
}
