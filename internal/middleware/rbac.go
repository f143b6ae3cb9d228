package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
	"github.com/noah-isme/pack-scheduler-api/pkg/response"
)

// RequireRoles only lets callers with one of roles through.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !lo.Contains(roles, claims.Role) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "illegal action for "+string(claims.Role)))
			c.Abort()
			return
		}
		c.Next()
	}
}
