package http

import (
	"time"

	"merval-chat-service/internal/chat"
	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/response"
)

type sendMessageReq struct {
	Message string `json:"message" binding:"required"`
}

func (r sendMessageReq) toInput(bearerToken string) chat.SendMessageInput {
	return chat.SendMessageInput{
		Message:     r.Message,
		BearerToken: bearerToken,
	}
}

type sendMessageResp struct {
	Response     string    `json:"response"`
	Source       string    `json:"source"`
	Model        string    `json:"model,omitempty"`
	UsedFallback bool      `json:"used_fallback"`
	Personalized bool      `json:"personalized"`
	Timestamp    time.Time `json:"timestamp"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Response:     out.Response,
		Source:       string(out.Source),
		Model:        out.Model,
		UsedFallback: out.UsedFallback,
		Personalized: out.Personalized,
		Timestamp:    out.Timestamp,
	}
}

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) toInput() chat.HistoryInput {
	return chat.HistoryInput{Limit: r.Limit}
}

type historyItem struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type historyResp struct {
	Messages []historyItem `json:"messages"`
	Count    int           `json:"count"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	items := make([]historyItem, 0, len(out.Messages))
	for _, m := range out.Messages {
		items = append(items, historyItem{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Source:    string(m.Source),
			CreatedAt: m.CreatedAt,
		})
	}
	return historyResp{Messages: items, Count: out.Count}
}

type sentimentReq struct {
	Text string `json:"text" binding:"required"`
}

func (r sentimentReq) toInput() chat.SentimentInput {
	return chat.SentimentInput{Text: r.Text}
}

type summaryResp struct {
	Summary       string            `json:"summary"`
	MessagesCount int               `json:"messages_count"`
	GeneratedAt   response.DateTime `json:"generated_at"`
}

func (h *handler) newSummaryResp(out chat.SummaryOutput) summaryResp {
	return summaryResp{
		Summary:       out.Summary,
		MessagesCount: out.MessagesCount,
		GeneratedAt:   response.DateTime(out.GeneratedAt),
	}
}

type sessionResp struct {
	UserID       string             `json:"user_id"`
	MessageCount int                `json:"message_count"`
	StartedAt    *response.DateTime `json:"started_at,omitempty"`
	LastActiveAt *response.DateTime `json:"last_active_at,omitempty"`
}

func (h *handler) newSessionResp(sess model.ChatSession) sessionResp {
	resp := sessionResp{
		UserID:       sess.UserID,
		MessageCount: sess.MessageCount,
	}
	if !sess.StartedAt.IsZero() {
		started := response.DateTime(sess.StartedAt)
		resp.StartedAt = &started
	}
	if !sess.LastActiveAt.IsZero() {
		lastActive := response.DateTime(sess.LastActiveAt)
		resp.LastActiveAt = &lastActive
	}
	return resp
}
