package usecase

import (
	"context"
	"errors"

	"merval-chat-service/internal/chat/repository"
	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/openai"
)

// Session returns the user's session summary. A user who never chatted
// gets a fresh zero-count session rather than an error.
func (uc *implUseCase) Session(ctx context.Context, sc model.Scope) (model.ChatSession, error) {
	sess, err := uc.store.Session(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.ChatSession{UserID: sc.UserID}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "chat.Session: failed to load session for %s: %v", sc.UserID, err)
		return model.ChatSession{}, err
	}
	return sess, nil
}

// AIStatus probes the AI backend.
func (uc *implUseCase) AIStatus(ctx context.Context) openai.Status {
	return uc.responder.Status(ctx)
}
