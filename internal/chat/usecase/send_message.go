package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"merval-chat-service/internal/chat"
	"merval-chat-service/internal/model"
	"merval-chat-service/internal/prompt"
)

// SendMessage runs one full exchange. Persistence failures are logged but
// never fail the request: the user gets their answer even when the store
// is struggling.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	message, err := uc.validateMessage(input.Message)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	uctx := uc.fetcher.Fetch(ctx, sc.UserID, input.BearerToken)

	history, err := uc.store.History(ctx, sc.UserID, uc.cfg.HistoryWindow)
	if err != nil {
		uc.l.Warnf(ctx, "chat.SendMessage: history unavailable for %s: %v", sc.UserID, err)
		history = nil
	}

	now := time.Now().UTC()
	msgs := prompt.Compose(message, history, uctx, now)
	reply := uc.responder.Respond(ctx, message, msgs)

	// Storage keeps the raw model output; the disclaimer is a response-time
	// concern only.
	uc.persistExchange(ctx, sc.UserID, message, reply.Content, reply.Source, now)

	return chat.SendMessageOutput{
		Response:     ensureDisclaimer(reply.Content),
		Source:       reply.Source,
		Model:        reply.Model,
		UsedFallback: reply.Source != model.SourceAssistant,
		Personalized: uctx.HasData() && reply.Source != model.SourceStatic,
		Timestamp:    now,
	}, nil
}

// SendTest answers without identity, history or persistence. It exercises
// the same response chain, which is the point of the endpoint.
func (uc *implUseCase) SendTest(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	message, err := uc.validateMessage(input.Message)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	now := time.Now().UTC()
	msgs := prompt.Compose(message, nil, nil, now)
	reply := uc.responder.Respond(ctx, message, msgs)

	return chat.SendMessageOutput{
		Response:     ensureDisclaimer(reply.Content),
		Source:       reply.Source,
		Model:        reply.Model,
		UsedFallback: reply.Source != model.SourceAssistant,
		Timestamp:    now,
	}, nil
}

func (uc *implUseCase) validateMessage(raw string) (string, error) {
	message := strings.TrimSpace(raw)
	if message == "" {
		return "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > uc.cfg.MaxMessageLength {
		return "", chat.ErrMessageTooLong
	}
	return message, nil
}

func (uc *implUseCase) persistExchange(ctx context.Context, userID, question, answer string, source model.ResponseSource, now time.Time) {
	userMsg := model.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      model.RoleUser,
		Content:   question,
		CreatedAt: now,
	}
	assistantMsg := model.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      model.RoleAssistant,
		Content:   answer,
		Source:    source,
		CreatedAt: now.Add(time.Millisecond), // keeps ordering stable for equal timestamps
	}

	stored := 0
	if err := uc.store.AppendMessage(ctx, userMsg); err != nil {
		uc.l.Errorf(ctx, "chat.SendMessage: failed to store user message for %s: %v", userID, err)
	} else {
		stored++
	}
	if err := uc.store.AppendMessage(ctx, assistantMsg); err != nil {
		uc.l.Errorf(ctx, "chat.SendMessage: failed to store assistant message for %s: %v", userID, err)
	} else {
		stored++
	}

	if stored > 0 {
		if err := uc.store.TouchSession(ctx, userID, stored, now); err != nil {
			uc.l.Errorf(ctx, "chat.SendMessage: failed to touch session for %s: %v", userID, err)
		}
	}
}
