package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishlife/parish_community_app/internal/apperrors"
)

// respondServiceError maps service errors onto HTTP statuses. The sentinel
// wrapped closest to the call site wins; anything unmapped is a 500 with
// the fallback message so internals never leak.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": userFacingMessage(err)})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": userFacingMessage(err)})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": userFacingMessage(err)})
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": userFacingMessage(err)})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": userFacingMessage(err)})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// userFacingMessage strips the wrapped sentinel suffix from a service error
// so the client sees "already registered for this event" instead of
// "already registered for this event: resource already exists".
func userFacingMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{
		apperrors.ErrNotFound, apperrors.ErrValidation, apperrors.ErrDuplicate,
		apperrors.ErrUnauthorized, apperrors.ErrForbidden, apperrors.ErrRefreshTokenExpired,
	} {
		suffix := ": " + sentinel.Error()
		if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	return msg
}
