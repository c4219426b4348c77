package responder

import (
	"context"
	"fmt"
	"strings"

	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/log"
	"merval-chat-service/pkg/openai"
)

// Chain tries each response stage in order and returns the first answer:
// pre-provisioned assistant, then plain chat completion, then canned
// replies. ai may be nil (no API key configured), in which case every
// request degrades straight to the canned stage.
type Chain struct {
	l  log.Logger
	ai openai.IOpenAI
}

// NewChain creates a response chain. Pass a nil client to run without
// OpenAI access.
func NewChain(l log.Logger, ai openai.IOpenAI) *Chain {
	return &Chain{l: l, ai: ai}
}

// Respond runs the chain. message is the raw user message (the assistant
// keeps its own instructions server-side); msgs is the fully composed
// conversation for the completion stage.
func (c *Chain) Respond(ctx context.Context, message string, msgs []openai.Message) Reply {
	if c.ai == nil {
		return Reply{Content: StaticReply(message), Source: model.SourceStatic}
	}

	if content, err := c.runAssistant(ctx, message); err == nil {
		return Reply{Content: content, Source: model.SourceAssistant}
	} else {
		c.l.Warnf(ctx, "responder.Chain.Respond: assistant stage failed, falling back: %v", err)
	}

	if content, err := c.runCompletion(ctx, msgs); err == nil {
		return Reply{Content: content, Source: model.SourceCompletion, Model: c.ai.Model()}
	} else {
		c.l.Warnf(ctx, "responder.Chain.Respond: completion stage failed, falling back: %v", err)
	}

	return Reply{Content: StaticReply(message), Source: model.SourceStatic}
}

// Status reports which OpenAI capabilities are currently usable.
func (c *Chain) Status(ctx context.Context) openai.Status {
	if c.ai == nil {
		return openai.Status{}
	}
	return c.ai.Status(ctx)
}

func (c *Chain) runAssistant(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	content, err := c.ai.RunAssistant(ctx, message)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("assistant returned empty reply")
	}
	return strings.TrimSpace(content), nil
}

func (c *Chain) runCompletion(ctx context.Context, msgs []openai.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := c.ai.CreateCompletion(ctx, &openai.CompletionRequest{
		Messages:    msgs,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("completion returned empty reply")
	}
	return content, nil
}
