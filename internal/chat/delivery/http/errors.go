package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"merval-chat-service/internal/chat"
	"merval-chat-service/pkg/response"
)

// respondError translates domain errors into HTTP responses. Validation
// errors map to 400, everything else is a 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrMessageTooLong), errors.Is(err, chat.ErrEmptyText):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
