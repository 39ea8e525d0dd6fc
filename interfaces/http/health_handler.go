package http

import (
	"context"
	"net/http"
	"time"

	"tagtube/domain/dto"
	"tagtube/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	Health(c *gin.Context)
}

// Pinger checks that the database answers.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping    Pinger
	timeout time.Duration
}

func NewHealthHandler(ping Pinger) IHealthHandler {
	return &HealthHandler{ping: ping, timeout: 2 * time.Second}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Database health check failed")
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
