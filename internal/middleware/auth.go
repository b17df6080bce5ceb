package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"reddybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginPath is where the back office sends a visitor without a session.
const LoginPath = "/admin/auth"

type SessionResolver interface {
	GetSession(ctx context.Context, token string) (*service.Session, error)
}

// AuthRequired resolves the bearer token to a live session on every request
// and sets it, with the identity id, in the context.
func AuthRequired(sessions SessionResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			unauthorized(c, "missing authorization header")
			return
		}
		sess, err := sessions.GetSession(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) {
				logger.Error("session lookup failed", zap.Error(err))
			}
			unauthorized(c, "invalid or expired session")
			return
		}
		c.Set("session", sess)
		c.Set("identity_id", sess.Identity.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "redirect": LoginPath})
}

// GetSession returns the session set by AuthRequired, or nil.
func GetSession(c *gin.Context) *service.Session {
	v, ok := c.Get("session")
	if !ok {
		return nil
	}
	return v.(*service.Session)
}

func GetIdentityID(c *gin.Context) string {
	return c.GetString("identity_id")
}
