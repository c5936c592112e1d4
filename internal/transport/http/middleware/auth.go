package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/align4/pkg/auth"
	"github.com/iamasit07/align4/pkg/httputil"
)

// TableIDKey is the gin context key holding the authorized table ID.
const TableIDKey = "table_id"

// TableAuthMiddleware requires a token issued for the table named by the
// :id path parameter.
func TableAuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableID := c.Param("id")

		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": err.Error()})
			return
		}

		claims, err := tokens.ValidateTableToken(tokenString, tableID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid table token"})
			return
		}

		c.Set(TableIDKey, claims.TableID)
		c.Next()
	}
}
