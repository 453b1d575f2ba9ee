package middleware

import (
	"net/http"
	"strings"

	"devconnector_backend/internal/auth"
	"devconnector_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const userIDContextKey = "userID"

// AuthMiddleware verifies the bearer token and places the user id into the
// request context. The secret is injected at router construction, never read
// from ambient state. Accepts both "Authorization: Bearer <t>" and the
// legacy "x-auth-token" header.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		userID, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader("x-auth-token")
}

// GetUserID returns the authenticated user id stored by AuthMiddleware.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(userIDContextKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
