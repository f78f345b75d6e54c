package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health probes the database with the request context, so a client that
// navigates away cancels the probe.
func (h *Handler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
