package middleware

import (
	"strings"

	"servis_backend/internal/auth"
	"servis_backend/internal/logger"
	"servis_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards a route group with bearer-token authentication.
// A missing or invalid token rejects the request before the handler runs;
// a valid one puts the caller's identity into the Gin context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.AbortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			apperrors.AbortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("username", claims.Username)

		ctx := logger.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
