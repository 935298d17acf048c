package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key under which the authenticated user's id is stored in
// the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id set by
// AuthMiddleware. The boolean is false when the request is unauthenticated.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
