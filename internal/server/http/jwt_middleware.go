package http

import (
	"net/http"
	"strings"

	"github.com/digivend/credit-shop/internal/auth/domain"
	"github.com/digivend/credit-shop/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"

	UserIDContextKey   = "userID"
	UsernameContextKey = "username"
	UserRoleContextKey = "userRole"
)

func NewAuthMiddleware(tokenParser jwt.TokenParser, secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken(secretKey, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UsernameContextKey, claims.Username)
		c.Set(UserRoleContextKey, claims.Role)
		c.Next()
	}
}

// NewAdminMiddleware must be attached after the auth middleware so that
// the role claim is already present in the request context.
func NewAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleContextKey)
		if role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errors": "admin access required"})
			return
		}

		c.Next()
	}
}
