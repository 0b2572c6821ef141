package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

const messageNotFound = "Message not found"

// MessageHandler handles contact form endpoints.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// List godoc
// GET /api/messages
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	views := make([]model.MessageView, 0, len(messages))
	for i := range messages {
		views = append(views, messages[i].View())
	}
	response.Success(c, http.StatusOK, gin.H{"messages": views})
}

// Create godoc
// POST /api/messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req model.CreateMessageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.messages.Create(c.Request.Context(), req); err != nil {
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Message sent successfully"})
}

// Delete godoc
// DELETE /api/messages?_id=
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, "_id", messageNotFound)
	if !ok {
		return
	}

	if err := h.messages.Delete(c.Request.Context(), id); err != nil {
		failStore(c, err, messageNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
