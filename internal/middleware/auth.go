package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/parishlife/parish_community_app/internal/utils"
)

// AccessTokenHeader is the header clients send the access JWT in. The
// mobile clients predate the Authorization convention and send a custom
// header instead.
const AccessTokenHeader = "X-Access-Token"

// AuthMiddleware validates the access JWT from the X-Access-Token header
// and stores the subject user id in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := c.GetHeader(AccessTokenHeader)
		if tokenString == "" {
			logger.Warn("Access token header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Access-Token header required"})
			return
		}

		claims, err := utils.ParseAndValidateToken(tokenString, jwtSecret, utils.TokenTypeAccess)
		if err != nil {
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
