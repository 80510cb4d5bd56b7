package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wiki-analyzer/cmd/api/trace"
	"wiki-analyzer/config"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
	maxBodyLog      = 1024
)

// RequestTrace 는 모든 inbound 요청에 Request ID 를 보장하고 컨텍스트와 응답 헤더에
// 싣는다. inbound 로그는 span 0, 위키백과 호출은 1,2,3,... 으로 증가한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		ctx := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctx)

		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, trace.CurrentSpanID(ctx))

		// 요청 바디 스니펫을 남기고, 핸들러가 다시 읽을 수 있도록 복원한다.
		var bodySnippet string
		if req.Body != nil && req.ContentLength != 0 &&
			(req.Method == http.MethodPost || req.Method == http.MethodPut) {
			if bodyBytes, err := io.ReadAll(req.Body); err == nil {
				bodySnippet = string(bodyBytes[:min(len(bodyBytes), maxBodyLog)])
				c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			}
		}

		c.Next()

		fields := config.Fields{
			"method":     req.Method,
			"path":       req.URL.Path,
			"query":      req.URL.RawQuery,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": requestID,
			"span_id":    trace.CurrentSpanID(c.Request.Context()),
		}
		if bodySnippet != "" {
			fields["body"] = bodySnippet
		}
		config.InfoWithFields("completed request", fields)
	}
}
