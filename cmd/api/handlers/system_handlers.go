package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wiki-analyzer/cmd/api/dto"
)

const Version = "1.0"

// PingFunc 는 저장소 연결을 확인한다. (*sql.DB).PingContext 를 그대로 넘긴다.
type PingFunc func(ctx context.Context) error

// RootHandler godoc
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.BannerDTO
// @Router       / [get]
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.BannerDTO{
			Message: "Wikipedia backend funcionando correctamente",
			Version: Version,
		})
	}
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Reports whether the database answers a ping
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthDTO
// @Failure      503  {object}  dto.HealthDTO
// @Router       /health [get]
func HealthHandler(ping PingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthDTO{Status: "degraded", Database: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok", Database: "up"})
	}
}
