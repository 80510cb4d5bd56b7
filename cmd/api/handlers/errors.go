package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wiki-analyzer/cmd/api/clients/wikiclient"
	"wiki-analyzer/cmd/api/dto"
	"wiki-analyzer/cmd/api/services"
	"wiki-analyzer/cmd/api/trace"
	"wiki-analyzer/config"
	"wiki-analyzer/repositories"
)

// writeError 는 계층별 sentinel 에러를 HTTP 상태 코드로 매핑한다.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, wikiclient.ErrNotFound), errors.Is(err, repositories.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, wikiclient.ErrUpstream), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		config.ErrorWithFields("request failed", config.Fields{
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
	}
	c.JSON(status, dto.ErrorResponseDTO{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: msg})
}
