package usecase

import (
	"context"
	"strings"
	"time"

	"merval-chat-service/internal/chat"
	"merval-chat-service/internal/model"
	"merval-chat-service/internal/responder"
)

const (
	summaryEmptyNotice       = "No hay conversación para resumir."
	summaryUnavailableNotice = "No se pudo generar un resumen de la conversación."
)

// ClearHistory removes the user's conversation. Unlike persistence during
// an exchange, a failed clear is surfaced: the user asked for the deletion
// and must know it did not happen.
func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	if err := uc.store.Clear(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "chat.ClearHistory: failed to clear history for %s: %v", sc.UserID, err)
		return err
	}
	return nil
}

// Summary condenses the user's recent conversation. Summarization failures
// degrade to a fixed notice rather than an error.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (chat.SummaryOutput, error) {
	out := chat.SummaryOutput{GeneratedAt: time.Now().UTC()}

	history, err := uc.store.History(ctx, sc.UserID, maxHistoryLimit)
	if err != nil {
		uc.l.Warnf(ctx, "chat.Summary: history unavailable for %s: %v", sc.UserID, err)
		history = nil
	}
	out.MessagesCount = len(history)

	if len(history) == 0 {
		out.Summary = summaryEmptyNotice
		return out, nil
	}

	summary, err := uc.responder.Summarize(ctx, history)
	if err != nil {
		uc.l.Warnf(ctx, "chat.Summary: summarization failed for %s: %v", sc.UserID, err)
		out.Summary = summaryUnavailableNotice
		return out, nil
	}

	out.Summary = summary
	return out, nil
}

// Sentiment classifies a message's financial sentiment. Classification
// failures degrade to a neutral reading.
func (uc *implUseCase) Sentiment(ctx context.Context, input chat.SentimentInput) (responder.Sentiment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return responder.Sentiment{}, chat.ErrEmptyText
	}

	s, err := uc.responder.Sentiment(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "chat.Sentiment: analysis failed: %v", err)
		return responder.Sentiment{
			Sentiment:     "neutral",
			Confidence:    0.5,
			MarketEmotion: "neutral",
			KeyIndicators: []string{},
		}, nil
	}
	return s, nil
}
