package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	antifraud Pinger
}

func NewHealthHandler(antifraud Pinger) *HealthHandler {
	return &HealthHandler{antifraud: antifraud}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// @Summary Anti-fraud health
// @Description Reports whether the anti-fraud service answers its ping. Always 200.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/antifraud [get]
func (h *HealthHandler) Antifraud(c *gin.Context) {
	if err := h.antifraud.Ping(c.Request.Context()); err != nil {
		slog.Warn("anti-fraud ping failed", "error", err.Error())
		c.JSON(http.StatusOK, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
