package http

import (
	"context"
	"net/http"

	"github.com/Mhany156/telegram-bot/internal/shop/bot"
	"github.com/gin-gonic/gin"
)

// Dispatcher is the command surface the messaging bridge drives.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg bot.Inbound) []bot.Reply
}

type updateRequestBody struct {
	UserId int64  `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type replyBody struct {
	UserId int64  `json:"user_id"`
	Text   string `json:"text"`
}

type updateResponseBody struct {
	Replies []replyBody `json:"replies"`
}

type UpdateHandler struct {
	dispatcher Dispatcher
}

func NewUpdateHandler(dispatcher Dispatcher) *UpdateHandler {
	return &UpdateHandler{
		dispatcher: dispatcher,
	}
}

func (h *UpdateHandler) HandleUpdate(c *gin.Context) {
	var body updateRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	replies := h.dispatcher.Dispatch(c.Request.Context(), bot.Inbound{
		UserId: body.UserId,
		Text:   body.Text,
	})

	response := updateResponseBody{Replies: make([]replyBody, 0, len(replies))}
	for _, r := range replies {
		response.Replies = append(response.Replies, replyBody{UserId: r.UserId, Text: r.Text})
	}

	c.JSON(http.StatusOK, response)
}
