package responder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/openai"
)

const summaryPromptFormat = `Resume la siguiente conversación sobre finanzas en máximo 3 puntos clave:

%s

Resumen:`

const sentimentPromptFormat = `Analiza el sentimiento del siguiente texto relacionado con finanzas e inversiones.
Devuelve una respuesta en formato JSON con:
- sentiment: "positive", "negative", "neutral"
- confidence: número entre 0 y 1
- market_emotion: "optimistic", "pessimistic", "cautious", "neutral"
- key_indicators: lista de palabras clave que indican el sentimiento

Texto: %s`

// Summarize condenses a conversation into a few key points. Unlike Respond
// there is no canned stage: without a working completion backend the caller
// gets an error.
func (c *Chain) Summarize(ctx context.Context, history []model.ChatMessage) (string, error) {
	if c.ai == nil {
		return "", fmt.Errorf("no AI backend configured")
	}

	var b strings.Builder
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}

	msgs := []openai.Message{{Role: "user", Content: fmt.Sprintf(summaryPromptFormat, b.String())}}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := c.ai.CreateCompletion(ctx, &openai.CompletionRequest{
		Messages:    msgs,
		MaxTokens:   summaryMaxTokens,
		Temperature: summaryTemperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summary returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("summary returned empty reply")
	}
	return summary, nil
}

// Sentiment classifies a message's financial sentiment via a JSON-shaped
// completion.
func (c *Chain) Sentiment(ctx context.Context, text string) (Sentiment, error) {
	if c.ai == nil {
		return Sentiment{}, fmt.Errorf("no AI backend configured")
	}

	msgs := []openai.Message{{Role: "user", Content: fmt.Sprintf(sentimentPromptFormat, text)}}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := c.ai.CreateCompletion(ctx, &openai.CompletionRequest{
		Messages:    msgs,
		MaxTokens:   sentimentMaxTokens,
		Temperature: sentimentTemperature,
	})
	if err != nil {
		return Sentiment{}, err
	}
	if len(resp.Choices) == 0 {
		return Sentiment{}, fmt.Errorf("sentiment returned no choices")
	}

	var s Sentiment
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &s); err != nil {
		return Sentiment{}, fmt.Errorf("failed to parse sentiment reply: %w", err)
	}
	return s, nil
}
