package chat

import (
	"time"

	"merval-chat-service/internal/model"
)

// SendMessageInput is the input for sending a chat message.
// The user identity lives in model.Scope, not here.
type SendMessageInput struct {
	Message     string
	BearerToken string // forwarded to the backend when fetching user context
}

// SendMessageOutput is the result of one chat exchange.
type SendMessageOutput struct {
	Response     string               `json:"response"`
	Source       model.ResponseSource `json:"source"`
	Model        string               `json:"model,omitempty"`
	UsedFallback bool                 `json:"used_fallback"`
	Personalized bool                 `json:"personalized"`
	Timestamp    time.Time            `json:"timestamp"`
}

// HistoryInput is the input for loading conversation history.
type HistoryInput struct {
	Limit int // max messages to return; 0 means the default window
}

// HistoryOutput is a slice of conversation history, oldest first.
type HistoryOutput struct {
	Messages []model.ChatMessage `json:"messages"`
	Count    int                 `json:"count"`
}

// SummaryOutput is a model-written digest of the user's conversation.
type SummaryOutput struct {
	Summary       string    `json:"summary"`
	MessagesCount int       `json:"messages_count"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// SentimentInput is the input for sentiment analysis.
type SentimentInput struct {
	Text string
}
