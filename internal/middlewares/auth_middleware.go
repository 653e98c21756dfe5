package middlewares

import (
	"net/http"
	"strings"

	"github.com/rlozl15/pypost/internal/services"

	"github.com/gin-gonic/gin"
)

// The API uses the token scheme of the original service:
// Authorization: Token <value>
const tokenScheme = "Token "

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication credentials were not provided"})
			ctx.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, tokenScheme) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			ctx.Abort()
			return
		}

		tokenValue := strings.TrimPrefix(authHeader, tokenScheme)

		user, err := authService.GetUserFromToken(tokenValue)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}
