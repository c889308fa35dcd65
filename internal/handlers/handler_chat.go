package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
)

// chatHandler handles HTTP requests for the shared chat feed.
type chatHandler struct {
	chatService portssvc.ChatSvcFacade
}

func newChatHandler(cs portssvc.ChatSvcFacade) *chatHandler {
	return &chatHandler{chatService: cs}
}

func registerChatRoutes(rg *gin.RouterGroup, chatService portssvc.ChatSvcFacade) {
	h := newChatHandler(chatService)

	chat := rg.Group("/chat")
	{
		chat.GET("", h.listMessages)
		chat.POST("", h.postMessage)
		chat.PUT("/:id", h.editMessage)
		chat.DELETE("/:id", h.deleteMessage)
	}
}

func (h *chatHandler) listMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *chatHandler) postMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for post chat message request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	message, err := h.chatService.PostMessage(c.Request.Context(), actor, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *chatHandler) editMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for edit chat message request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	message, err := h.chatService.EditMessage(c.Request.Context(), actor, c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *chatHandler) deleteMessage(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.chatService.DeleteMessage(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
