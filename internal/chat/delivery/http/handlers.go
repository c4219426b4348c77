package http

import (
	"github.com/gin-gonic/gin"

	"merval-chat-service/internal/middleware"
	"merval-chat-service/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Answers a user message through the assistant/completion/static chain and stores the exchange.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "User message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/message [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, sc, req.toInput(middleware.GetBearerToken(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// SendTest godoc
// @Summary     Send a test message
// @Description Answers a message without authentication or persistence. Connectivity check for clients.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Test message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/chat/test [POST]
func (h *handler) SendTest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendTest(ctx, req.toInput(""))
	if err != nil {
		h.l.Errorf(ctx, "uc.SendTest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the authenticated user's recent messages, oldest first.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       limit query int false "Max messages (default: history window)"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Removes the authenticated user's messages and session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.ClearHistory(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Historial limpiado exitosamente"})
}

// Summary godoc
// @Summary     Summarize the conversation
// @Description Condenses the authenticated user's conversation into a few key points.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/chat/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Sentiment godoc
// @Summary     Analyze message sentiment
// @Description Classifies a message's financial sentiment.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sentimentReq true "Text to analyze"
// @Success     200 {object} responder.Sentiment
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/chat/analyze-sentiment [POST]
func (h *handler) Sentiment(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := middleware.GetScope(c); !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSentimentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sentiment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sentiment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Session godoc
// @Summary     Get session info
// @Description Returns the authenticated user's conversation session summary.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	sess, err := h.uc.Session(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Session: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(sess))
}

// AIStatus godoc
// @Summary     AI backend status
// @Description Probes the AI backend and reports which capabilities are usable.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]bool
// @Router      /api/chat/ai-status [GET]
func (h *handler) AIStatus(c *gin.Context) {
	st := h.uc.AIStatus(c.Request.Context())
	response.OK(c, gin.H{
		"openai_configured":   st.Configured,
		"openai_available":    st.Available,
		"assistant_available": st.AssistantAvailable,
	})
}
