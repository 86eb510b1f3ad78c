package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	mem "roamio/pkg/memcache"
	"roamio/pkg/utils"
)

func JWTAuthMiddleware(revoked mem.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("token", tokenString)
		c.Next()
	}
}
