package middleware

import (
	"net/http"
	"strings"

	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// RequireAuth creates a Gin middleware for JWT authentication. The
// Authorization header carries the raw token value; a "Bearer " prefix is
// tolerated and stripped.
func RequireAuth(tokens *service.TokenManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied, no token provided"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			logger.Debug("Invalid JWT token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Set user claims in context
		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole gates a route on exact role equality. It must be composed
// after RequireAuth so unauthenticated requests get 401, never 403.
func RequireRole(role string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetString(ContextRole)
		if got != role {
			logger.Debug("Insufficient role",
				zap.String("required", role),
				zap.String("got", got))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden, insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
