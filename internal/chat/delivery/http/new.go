package http

import (
	"github.com/gin-gonic/gin"

	"merval-chat-service/internal/chat"
	"merval-chat-service/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	SendTest(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
	Summary(c *gin.Context)
	Sentiment(c *gin.Context)
	Session(c *gin.Context)
	AIStatus(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
