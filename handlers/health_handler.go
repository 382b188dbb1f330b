package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mailguard-live/mailguard-backend/internal/store"
	"github.com/mailguard-live/mailguard-backend/types"
)

type HealthHandler struct {
	messageStore store.MessageStore
}

func NewHealthHandler(messageStore store.MessageStore) *HealthHandler {
	return &HealthHandler{messageStore: messageStore}
}

// LivenessCheck handles kubernetes liveness probe
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck reports whether the message store is reachable
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if err := h.messageStore.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, types.HealthResponse{Status: types.HealthStatusDown})
		return
	}
	c.JSON(http.StatusOK, types.HealthResponse{Status: types.HealthStatusUp})
}
