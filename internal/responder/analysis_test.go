package responder

import (
	"context"
	"fmt"
	"testing"

	"merval-chat-service/internal/model"
)

func TestChainSummarize(t *testing.T) {
	ctx := context.Background()
	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "¿Cómo viene el MERVAL?"},
		{Role: model.RoleAssistant, Content: "El índice subió esta semana."},
	}

	t.Run("Success", func(t *testing.T) {
		c := NewChain(noopLogger{}, &mockAI{completionText: "- El usuario preguntó por el MERVAL."})

		summary, err := c.Summarize(ctx, history)
		if err != nil {
			t.Fatalf("summarize: %v", err)
		}
		if summary != "- El usuario preguntó por el MERVAL." {
			t.Errorf("unexpected summary: %q", summary)
		}
	})

	t.Run("Completion Error", func(t *testing.T) {
		c := NewChain(noopLogger{}, &mockAI{completionErr: fmt.Errorf("api down")})

		if _, err := c.Summarize(ctx, history); err == nil {
			t.Error("expected error when completion fails")
		}
	})

	t.Run("Nil Client", func(t *testing.T) {
		c := NewChain(noopLogger{}, nil)

		if _, err := c.Summarize(ctx, history); err == nil {
			t.Error("expected error without AI backend")
		}
	})
}

func TestChainSentiment(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses JSON Reply", func(t *testing.T) {
		c := NewChain(noopLogger{}, &mockAI{
			completionText: `{"sentiment": "positive", "confidence": 0.8, "market_emotion": "optimistic", "key_indicators": ["subió"]}`,
		})

		s, err := c.Sentiment(ctx, "El MERVAL subió fuerte hoy")
		if err != nil {
			t.Fatalf("sentiment: %v", err)
		}
		if s.Sentiment != "positive" || s.MarketEmotion != "optimistic" {
			t.Errorf("unexpected sentiment: %+v", s)
		}
		if s.Confidence != 0.8 || len(s.KeyIndicators) != 1 {
			t.Errorf("unexpected sentiment details: %+v", s)
		}
	})

	t.Run("Rejects Non-JSON Reply", func(t *testing.T) {
		c := NewChain(noopLogger{}, &mockAI{completionText: "el texto es positivo"})

		if _, err := c.Sentiment(ctx, "texto"); err == nil {
			t.Error("expected error for unparseable reply")
		}
	})

	t.Run("Nil Client", func(t *testing.T) {
		c := NewChain(noopLogger{}, nil)

		if _, err := c.Sentiment(ctx, "texto"); err == nil {
			t.Error("expected error without AI backend")
		}
	})
}
