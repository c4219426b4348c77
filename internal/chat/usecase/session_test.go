package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"merval-chat-service/internal/chat"
	"merval-chat-service/internal/chat/repository"
	"merval-chat-service/internal/model"
)

func TestHistory(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Returns Stored Messages", func(t *testing.T) {
		store := &mockStore{history: []model.ChatMessage{
			{ID: "m1", Role: model.RoleUser, Content: "hola"},
			{ID: "m2", Role: model.RoleAssistant, Content: "buenas"},
		}}
		uc := newTestUseCase(store, &mockFetcher{}, &mockResponder{})

		out, err := uc.History(ctx, sc, chat.HistoryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 || len(out.Messages) != 2 {
			t.Errorf("unexpected output: %+v", out)
		}
		if out.Messages[0].ID != "m1" {
			t.Error("history must stay oldest first")
		}
	})

	t.Run("Caps Limit", func(t *testing.T) {
		var history []model.ChatMessage
		for i := 0; i < maxHistoryLimit+20; i++ {
			history = append(history, model.ChatMessage{Role: model.RoleUser})
		}
		store := &mockStore{history: history}
		uc := newTestUseCase(store, &mockFetcher{}, &mockResponder{})

		out, err := uc.History(ctx, sc, chat.HistoryInput{Limit: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != maxHistoryLimit {
			t.Errorf("expected limit capped at %d, got %d", maxHistoryLimit, out.Count)
		}
	})

	t.Run("Store Error", func(t *testing.T) {
		store := &mockStore{historyErr: errors.New("store down")}
		uc := newTestUseCase(store, &mockFetcher{}, &mockResponder{})

		if _, err := uc.History(ctx, sc, chat.HistoryInput{}); err == nil {
			t.Error("expected error when the store fails")
		}
	})
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Existing Session", func(t *testing.T) {
		now := time.Now()
		store := &mockStore{session: model.ChatSession{UserID: "u1", MessageCount: 6, StartedAt: now, LastActiveAt: now}}
		uc := newTestUseCase(store, &mockFetcher{}, &mockResponder{})

		sess, err := uc.Session(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.MessageCount != 6 {
			t.Errorf("unexpected session: %+v", sess)
		}
	})

	t.Run("New User Gets Fresh Session", func(t *testing.T) {
		store := &mockStore{sessionErr: repository.ErrNotFound}
		uc := newTestUseCase(store, &mockFetcher{}, &mockResponder{})

		sess, err := uc.Session(ctx, sc)
		if err != nil {
			t.Fatalf("expected fresh session, got error: %v", err)
		}
		if sess.UserID != "u1" || sess.MessageCount != 0 {
			t.Errorf("unexpected fresh session: %+v", sess)
		}
	})

	t.Run("Store Error", func(t *testing.T) {
		store := &mockStore{sessionErr: errors.New("store down")}
		uc := newTestUseCase(store, &mockFetcher{}, &mockResponder{})

		if _, err := uc.Session(ctx, sc); err == nil {
			t.Error("expected error when the store fails")
		}
	})
}
