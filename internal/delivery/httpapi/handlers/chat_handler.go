package handlers

import (
	"net/http"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/middleware"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Open returns the caller's open chat, creating one if none exists.
func (h *ChatHandler) Open(c *gin.Context) {
	session := middleware.SessionFrom(c)

	chat, err := h.uc.OpenChat(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

type postMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.uc.PostMessage(c.Request.Context(), session, c.Param("id"), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) AdminReply(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.uc.AdminReply(c.Request.Context(), session.Actor(), c.Param("id"), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	session := middleware.SessionFrom(c)

	messages, err := h.uc.ListMessages(c.Request.Context(), c.Param("id"), session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *ChatHandler) ListChats(c *gin.Context) {
	session := middleware.SessionFrom(c)

	chats, err := h.uc.ListChats(c.Request.Context(), c.Query("open") == "true", session.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

func (h *ChatHandler) Close(c *gin.Context) {
	session := middleware.SessionFrom(c)

	if err := h.uc.CloseChat(c.Request.Context(), c.Param("id"), session.Actor()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
