package http

import (
	"github.com/gin-gonic/gin"

	"merval-chat-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The test and status endpoints skip Auth; everything touching user data
// requires it.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/message", mw.Auth(), mw.RateLimit(), h.SendMessage)
	rg.POST("/test", mw.RateLimit(), h.SendTest)
	rg.GET("/history", mw.Auth(), h.History)
	rg.DELETE("/history", mw.Auth(), h.ClearHistory)
	rg.GET("/summary", mw.Auth(), mw.RateLimit(), h.Summary)
	rg.POST("/analyze-sentiment", mw.Auth(), mw.RateLimit(), h.Sentiment)
	rg.GET("/session", mw.Auth(), h.Session)
	rg.GET("/ai-status", h.AIStatus)
}
