package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farellandr/eventportal/internal/browse"
	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/middleware"
)

// respondWithServiceError answers a failed browse.Service call.
func respondWithServiceError(c *gin.Context, err error, message string) {
	var refused *browse.RefusedError
	switch {
	case errors.Is(err, browse.ErrForbidden):
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to manage this event.")
	case errors.Is(err, browse.ErrInvalidStatus):
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, browse.ErrAlreadyCancelled):
		helpers.RespondWithError(c, http.StatusConflict, "Registration already cancelled.")
	case errors.As(err, &refused):
		helpers.RespondWithError(c, http.StatusConflict, refused.Reason)
	default:
		status := helpers.GatewayStatus(err)
		if status >= http.StatusInternalServerError {
			middleware.GetLogger(c).Warn("backend call failed", zap.Error(err))
		}
		helpers.RespondWithGatewayError(c, err, message)
	}
}

func browseService(c *gin.Context) (*browse.Service, bool) {
	svc := middleware.GetBrowseService(c)
	if svc == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event service not configured.")
		return nil, false
	}
	return svc, true
}
