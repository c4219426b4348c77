package usecase

import (
	"context"

	"merval-chat-service/internal/chat"
	"merval-chat-service/internal/model"
)

// maxHistoryLimit caps what one request may pull out of the store.
const maxHistoryLimit = 50

// History returns the user's conversation history, oldest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input chat.HistoryInput) (chat.HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.HistoryWindow
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	msgs, err := uc.store.History(ctx, sc.UserID, limit)
	if err != nil {
		uc.l.Errorf(ctx, "chat.History: failed to load history for %s: %v", sc.UserID, err)
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{Messages: msgs, Count: len(msgs)}, nil
}
