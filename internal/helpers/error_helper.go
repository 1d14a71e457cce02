package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventportal/internal/gateway"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// GatewayStatus maps a backend failure to the status the portal answers with.
func GatewayStatus(err error) int {
	if errors.Is(err, gateway.ErrNotFound) {
		return http.StatusNotFound
	}
	switch code := gateway.StatusCode(err); {
	case code == http.StatusConflict:
		return http.StatusConflict
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return http.StatusForbidden
	case code >= 400 && code < 500:
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func RespondWithGatewayError(c *gin.Context, err error, customMessage string) {
	status := GatewayStatus(err)
	if status == http.StatusNotFound {
		customMessage = "Resource not found."
	}
	RespondWithError(c, status, customMessage)
}
