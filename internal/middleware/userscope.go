package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/uuid"
)

// UserIDHeader carries the authenticated user's ID, set by the auth gateway
// in front of this service. Authentication itself happens upstream; this
// service only scopes data to the forwarded identity.
const UserIDHeader = "X-User-ID"

const userIDKey = "userID"

// UserScope returns a Gin middleware that extracts the forwarded user ID
// and stores it on the context. Requests without a valid UUID are rejected.
func UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" || !uuid.IsValid(userID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrUnauthorized.Code,
					"message": apperrors.ErrUnauthorized.Message,
				},
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
