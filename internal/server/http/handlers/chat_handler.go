package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bookbot/internal/server/http/dto"
)

// ChatHandler manages the conversational endpoints.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Start handles POST /api/chat/start.
func (h *ChatHandler) Start(c *gin.Context) {
	var req dto.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reply := h.facade.StartConversation(c.Request.Context(), req.UserID)
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}

// Message handles POST /api/chat/message.
func (h *ChatHandler) Message(c *gin.Context) {
	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	reply := h.facade.HandleMessage(c.Request.Context(), req.UserID, req.Text)
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
