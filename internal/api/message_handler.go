package api

import (
	"errors"
	"net/http"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// --- DTOs ---

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// --- Handlers ---

// SendMessage godoc
// @Summary Send a message
// @Description Stores a message from the authenticated caller to the receiver.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param messageRequest body SendMessageRequest true "Receiver and content"
// @Success 201 {object} gin.H "Stored message"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	senderID, ok := callerObjectID(c)
	if !ok {
		return
	}
	receiverID, err := primitive.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid receiver ID format.")
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), senderID, receiverID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrMessageValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to send message.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Message sent",
		"chatMessage": message,
	})
}

// GetConversation godoc
// @Summary List the conversation with another party
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param withId path string true "Other party's ID"
// @Success 200 {object} gin.H "Messages, oldest first"
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /messages/{withId} [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	callerID, ok := callerObjectID(c)
	if !ok {
		return
	}
	otherID, err := primitive.ObjectIDFromHex(c.Param("withId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid party ID format.")
		return
	}

	messages, err := h.messageService.GetConversation(c.Request.Context(), callerID, otherID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list messages.")
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// MarkRead godoc
// @Summary Mark a message as read
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} gin.H "Marked"
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Message not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	messageID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid message ID format.")
		return
	}

	if err := h.messageService.MarkRead(c.Request.Context(), messageID); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to mark message read.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message marked as read"})
}
