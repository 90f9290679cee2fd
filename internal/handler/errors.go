package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"continuum-server/internal/ai"
	"continuum-server/internal/models"
)

// APIError — стандартизированный ответ об ошибке.
type APIError struct {
	Message string `json:"message"`
}

// handleError переводит ошибки нижних слоев в HTTP статусы. Сбои генерации
// и отсутствующая конфигурация LLM — это проблемы внешнего сервиса, они
// отдаются как 502, а не как 500.
func (h *Handler) handleError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, ai.ErrGenerationFailed),
		errors.Is(err, ai.ErrMalformedReply),
		errors.Is(err, ai.ErrNotConfigured):
		status = http.StatusBadGateway
	default:
		h.logger.Error("Unhandled internal error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{Message: "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, APIError{Message: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: err.Error()})
}
