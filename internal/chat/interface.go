package chat

import (
	"context"

	"merval-chat-service/internal/model"
	"merval-chat-service/internal/responder"
	"merval-chat-service/pkg/openai"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// SendMessage runs one full exchange: validate, personalize, answer
	// through the response chain, persist both sides of the conversation.
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)

	// SendTest answers a message without authentication, persistence or
	// personalization. Used for connectivity checks.
	SendTest(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)

	// History returns the user's conversation history, oldest first.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)

	// ClearHistory removes the user's conversation history and session.
	ClearHistory(ctx context.Context, sc model.Scope) error

	// Summary condenses the user's conversation into a few key points.
	// Degrades to a fixed notice when the AI backend cannot summarize.
	Summary(ctx context.Context, sc model.Scope) (SummaryOutput, error)

	// Sentiment classifies a message's financial sentiment. Degrades to a
	// neutral reading when the AI backend cannot classify.
	Sentiment(ctx context.Context, input SentimentInput) (responder.Sentiment, error)

	// Session returns the user's conversation session summary.
	Session(ctx context.Context, sc model.Scope) (model.ChatSession, error)

	// AIStatus probes the AI backend and reports what is usable.
	AIStatus(ctx context.Context) openai.Status
}
