package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/exclusiveng/360urban-backendmysql/configs"
	"github.com/exclusiveng/360urban-backendmysql/entity"
	"github.com/exclusiveng/360urban-backendmysql/pkg/resp"
	"github.com/exclusiveng/360urban-backendmysql/utils"
)

// AuthMiddleware verifies the bearer access token and, when roles are given,
// gates on them. Role comparison is case-insensitive.
func AuthMiddleware(cfg *configs.Config, requiredRoles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "Missing or invalid authorization header")
			c.Abort()
			return
		}

		claims := utils.VerifyToken(strings.TrimPrefix(h, "Bearer "), cfg.JWTSecret)
		if claims == nil {
			resp.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		if len(requiredRoles) > 0 {
			if !entity.UserRole(claims.Role).OneOf(requiredRoles...) {
				resp.Forbidden(c, "Insufficient permissions")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
