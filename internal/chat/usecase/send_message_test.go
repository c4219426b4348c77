package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"merval-chat-service/internal/chat"
	"merval-chat-service/internal/model"
	"merval-chat-service/internal/responder"
)

func newTestUseCase(store *mockStore, fetcher *mockFetcher, resp *mockResponder) *implUseCase {
	return New(&mockLogger{}, store, fetcher, resp, Config{HistoryWindow: 10, MaxMessageLength: 2000})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", Name: "Ana"}

	t.Run("Happy Path Assistant", func(t *testing.T) {
		store := &mockStore{}
		resp := &mockResponder{reply: responder.Reply{
			Content: "El MERVAL subió hoy. Información solo con fines informativos. No constituye recomendación de inversión.",
			Source:  model.SourceAssistant,
		}}
		uc := newTestUseCase(store, &mockFetcher{}, resp)

		out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "  ¿Cómo viene el MERVAL?  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Source != model.SourceAssistant {
			t.Errorf("expected assistant source, got %s", out.Source)
		}
		if out.UsedFallback {
			t.Error("assistant replies are not fallbacks")
		}
		if resp.gotMessage != "¿Cómo viene el MERVAL?" {
			t.Errorf("message not trimmed before responding: %q", resp.gotMessage)
		}

		if len(store.appended) != 2 {
			t.Fatalf("expected both sides persisted, got %d", len(store.appended))
		}
		if store.appended[0].Role != model.RoleUser || store.appended[1].Role != model.RoleAssistant {
			t.Error("messages persisted in wrong roles/order")
		}
		if store.appended[1].Source != model.SourceAssistant {
			t.Errorf("assistant message must record its source, got %s", store.appended[1].Source)
		}
		if len(store.touchDeltas) != 1 || store.touchDeltas[0] != 2 {
			t.Errorf("expected one session touch of 2, got %v", store.touchDeltas)
		}
	})

	t.Run("Appends Disclaimer", func(t *testing.T) {
		store := &mockStore{}
		resp := &mockResponder{reply: responder.Reply{Content: "Respuesta sin aviso.", Source: model.SourceCompletion, Model: "gpt-3.5-turbo-0125"}}
		uc := newTestUseCase(store, &mockFetcher{}, resp)

		out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "hola"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Response, "solo con fines informativos") {
			t.Error("disclaimer missing from reply")
		}
		if !out.UsedFallback {
			t.Error("completion replies count as fallback")
		}
		if store.appended[1].Content != "Respuesta sin aviso." {
			t.Errorf("stored message must keep the raw reply, got %q", store.appended[1].Content)
		}
	})

	t.Run("Does Not Duplicate Disclaimer", func(t *testing.T) {
		resp := &mockResponder{reply: responder.Reply{
			Content: "Todo esto es información solo con fines informativos.",
			Source:  model.SourceCompletion,
		}}
		uc := newTestUseCase(&mockStore{}, &mockFetcher{}, resp)

		out, _ := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "hola"})
		if got := strings.Count(out.Response, "solo con fines informativos"); got != 1 {
			t.Errorf("expected exactly one disclaimer, found %d", got)
		}
	})

	t.Run("Personalization Flag", func(t *testing.T) {
		fetcher := &mockFetcher{result: &model.UserContext{Profile: &model.UserProfile{ID: "u1", Name: "Ana"}}}

		resp := &mockResponder{reply: responder.Reply{Content: "respuesta", Source: model.SourceCompletion}}
		uc := newTestUseCase(&mockStore{}, fetcher, resp)
		out, _ := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "hola", BearerToken: "tok"})
		if !out.Personalized {
			t.Error("expected personalized reply with user context")
		}

		// Static replies ignore the context, so they are never personalized.
		resp.reply = responder.Reply{Content: "respuesta fija", Source: model.SourceStatic}
		out, _ = uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "hola", BearerToken: "tok"})
		if out.Personalized {
			t.Error("static replies must not claim personalization")
		}
	})

	t.Run("Validation", func(t *testing.T) {
		uc := newTestUseCase(&mockStore{}, &mockFetcher{}, &mockResponder{})

		if _, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "   "}); !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}

		long := strings.Repeat("a", 2001)
		if _, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: long}); !errors.Is(err, chat.ErrMessageTooLong) {
			t.Errorf("expected ErrMessageTooLong, got %v", err)
		}
	})

	t.Run("History Failure Does Not Block", func(t *testing.T) {
		store := &mockStore{historyErr: errors.New("store down")}
		resp := &mockResponder{reply: responder.Reply{Content: "respuesta", Source: model.SourceStatic}}
		uc := newTestUseCase(store, &mockFetcher{}, resp)

		if _, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "hola"}); err != nil {
			t.Errorf("history failure must not fail the exchange: %v", err)
		}
	})

	t.Run("Persistence Failure Does Not Block", func(t *testing.T) {
		store := &mockStore{appendErr: errors.New("store down")}
		resp := &mockResponder{reply: responder.Reply{Content: "respuesta", Source: model.SourceStatic}}
		uc := newTestUseCase(store, &mockFetcher{}, resp)

		out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Message: "hola"})
		if err != nil {
			t.Errorf("persistence failure must not fail the exchange: %v", err)
		}
		if out.Response == "" {
			t.Error("expected a reply despite persistence failure")
		}
		if len(store.touchDeltas) != 0 {
			t.Errorf("nothing stored, session must not be touched: %v", store.touchDeltas)
		}
	})
}

func TestSendTest(t *testing.T) {
	ctx := context.Background()

	t.Run("No Persistence", func(t *testing.T) {
		store := &mockStore{}
		resp := &mockResponder{reply: responder.Reply{Content: "respuesta", Source: model.SourceStatic}}
		uc := newTestUseCase(store, &mockFetcher{}, resp)

		out, err := uc.SendTest(ctx, chat.SendMessageInput{Message: "hola"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response == "" {
			t.Error("expected a reply")
		}
		if len(store.appended) != 0 || len(store.touchDeltas) != 0 {
			t.Error("test messages must not be persisted")
		}
	})

	t.Run("Validates Input", func(t *testing.T) {
		uc := newTestUseCase(&mockStore{}, &mockFetcher{}, &mockResponder{})
		if _, err := uc.SendTest(ctx, chat.SendMessageInput{Message: ""}); !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})
}
