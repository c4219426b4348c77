package http

import (
	"github.com/gin-gonic/gin"
)

// processSendMessageReq binds and validates the send message request body.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSentimentReq binds and validates the sentiment analysis body.
func (h *handler) processSentimentReq(c *gin.Context) (sentimentReq, error) {
	var req sentimentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
