package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wiki-analyzer/cmd/api/dto"
	"wiki-analyzer/cmd/api/trace"
	"wiki-analyzer/config"
)

// Recovery 는 핸들러 panic 을 로그로 남기고 공통 에러 형식의 500 으로 응답한다.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		config.ErrorWithFields("panic recovered", config.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"panic":      fmt.Sprint(recovered),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal server error"})
	})
}
