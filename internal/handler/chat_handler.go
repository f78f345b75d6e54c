package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curavital-api/internal/chat"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers an FAQ message with a canned reply. Stateless; the
// transcript lives in the browser.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": chat.Reply(req.Message)})
}
