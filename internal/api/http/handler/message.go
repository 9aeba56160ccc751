package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mbarbosa/recado-server/internal/api/http/httpctx"
	"github.com/mbarbosa/recado-server/internal/logger"
	"github.com/mbarbosa/recado-server/internal/model"
)

// MessageService defines message operations.
type MessageService interface {
	List(ctx context.Context, limit, offset int) ([]model.Message, error)
	GetByID(ctx context.Context, id int64) (model.Message, error)
	Create(ctx context.Context, params model.CreateMessageParams, identity model.Identity) (model.Message, error)
	Update(ctx context.Context, id int64, params model.UpdateMessageParams, identity model.Identity) (model.Message, error)
	Remove(ctx context.Context, id int64, identity model.Identity) error
}

// Message handles HTTP endpoints for messages.
type Message struct {
	messageService MessageService
	logger         *logger.Logger
}

// NewMessage creates a new Message handler.
func NewMessage(messageService MessageService, logger *logger.Logger) *Message {
	return &Message{
		messageService: messageService,
		logger:         logger,
	}
}

type createMessageRequest struct {
	Text string `json:"text" binding:"required,min=1"`
	ToID int64  `json:"toId" binding:"required"`
}

type updateMessageRequest struct {
	Text *string `json:"text" binding:"omitempty,min=1"`
	Read *bool   `json:"read"`
}

type messageResponse struct {
	ID        int64       `json:"id"`
	Text      string      `json:"text"`
	Read      bool        `json:"read"`
	From      model.Party `json:"from"`
	To        model.Party `json:"to"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toMessageResponse(message model.Message) messageResponse {
	return messageResponse{
		ID:        message.ID,
		Text:      message.Text,
		Read:      message.Read,
		From:      message.From,
		To:        message.To,
		CreatedAt: message.CreatedAt,
	}
}

// List returns messages, paginated, newest first.
func (h *Message) List(c *gin.Context) {
	pagination, ok := bindPagination(c)
	if !ok {
		return
	}

	messages, err := h.messageService.List(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]messageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toMessageResponse(message))
	}

	c.JSON(http.StatusOK, responses)
}

// Get returns one message.
func (h *Message) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	message, err := h.messageService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMessageResponse(message))
}

// Create stores a new message from the authenticated subject.
func (h *Message) Create(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "text and toId are required")
		return
	}

	identity, ok := httpctx.Identity(c)
	if !ok {
		abortMissingIdentity(c)
		return
	}

	message, err := h.messageService.Create(c.Request.Context(), model.CreateMessageParams{
		Text: req.Text,
		ToID: req.ToID,
	}, identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMessageResponse(message))
}

// Update changes a message owned by the authenticated subject.
func (h *Message) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req updateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "invalid update payload")
		return
	}

	identity, ok := httpctx.Identity(c)
	if !ok {
		abortMissingIdentity(c)
		return
	}

	message, err := h.messageService.Update(c.Request.Context(), id, model.UpdateMessageParams{
		Text: req.Text,
		Read: req.Read,
	}, identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMessageResponse(message))
}

// Remove deletes a message owned by the authenticated subject.
func (h *Message) Remove(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	identity, ok := httpctx.Identity(c)
	if !ok {
		abortMissingIdentity(c)
		return
	}

	if err := h.messageService.Remove(c.Request.Context(), id, identity); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
