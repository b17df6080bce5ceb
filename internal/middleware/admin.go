package middleware

import (
	"errors"
	"net/http"

	"reddybook/internal/models"
	"reddybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminLookup interface {
	Lookup(identityID string) (*models.AdminUser, error)
}

// AdminRequired lets through only identities listed in the admin directory.
// A lookup error is treated as a denial. The session itself stays valid.
func AdminRequired(dir AdminLookup, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := dir.Lookup(GetIdentityID(c))
		if err != nil {
			if !errors.Is(err, service.ErrAccessDenied) {
				logger.Error("admin lookup failed", zap.String("identity_id", GetIdentityID(c)), zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Access Denied",
				"message": "You don't have admin privileges.",
			})
			return
		}
		c.Set("admin", admin)
		c.Next()
	}
}

func GetAdmin(c *gin.Context) *models.AdminUser {
	v, ok := c.Get("admin")
	if !ok {
		return nil
	}
	return v.(*models.AdminUser)
}
