package responder

import (
	"context"

	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/openai"
)

// Reply is the outcome of one pass through the response chain.
type Reply struct {
	Content string
	Source  model.ResponseSource
	Model   string // completion model, empty for assistant/static replies
}

// Sentiment is the model's read of a message, JSON-shaped by the analysis
// prompt.
type Sentiment struct {
	Sentiment     string   `json:"sentiment"`      // "positive", "negative", "neutral"
	Confidence    float64  `json:"confidence"`     // 0..1
	MarketEmotion string   `json:"market_emotion"` // "optimistic", "pessimistic", "cautious", "neutral"
	KeyIndicators []string `json:"key_indicators"`
}

// Responder produces an assistant reply for a user message. Respond never
// fails: its last stage is a canned reply that always succeeds. Summarize
// and Sentiment have no canned stage and report errors instead.
type Responder interface {
	Respond(ctx context.Context, message string, msgs []openai.Message) Reply
	Summarize(ctx context.Context, history []model.ChatMessage) (string, error)
	Sentiment(ctx context.Context, text string) (Sentiment, error)
	Status(ctx context.Context) openai.Status
}
