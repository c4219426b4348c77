package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"merval-chat-service/internal/chat"
	"merval-chat-service/internal/middleware"
	"merval-chat-service/internal/model"
	"merval-chat-service/internal/responder"
	"merval-chat-service/pkg/openai"
	"merval-chat-service/pkg/response"
	"merval-chat-service/pkg/token"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	sendOut    chat.SendMessageOutput
	sendErr    error
	gotScope   model.Scope
	gotInput   chat.SendMessageInput
	historyOut chat.HistoryOutput
	clearErr   error
	cleared    bool
	summaryOut chat.SummaryOutput
	sentiment  responder.Sentiment
	sessionOut model.ChatSession
	status     openai.Status
}

func (m *mockUseCase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	m.gotScope = sc
	m.gotInput = input
	return m.sendOut, m.sendErr
}

func (m *mockUseCase) SendTest(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	m.gotInput = input
	return m.sendOut, m.sendErr
}

func (m *mockUseCase) History(ctx context.Context, sc model.Scope, input chat.HistoryInput) (chat.HistoryOutput, error) {
	m.gotScope = sc
	return m.historyOut, nil
}

func (m *mockUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	m.gotScope = sc
	m.cleared = m.clearErr == nil
	return m.clearErr
}

func (m *mockUseCase) Summary(ctx context.Context, sc model.Scope) (chat.SummaryOutput, error) {
	m.gotScope = sc
	return m.summaryOut, nil
}

func (m *mockUseCase) Sentiment(ctx context.Context, input chat.SentimentInput) (responder.Sentiment, error) {
	if strings.TrimSpace(input.Text) == "" {
		return responder.Sentiment{}, chat.ErrEmptyText
	}
	return m.sentiment, nil
}

func (m *mockUseCase) Session(ctx context.Context, sc model.Scope) (model.ChatSession, error) {
	m.gotScope = sc
	return m.sessionOut, nil
}

func (m *mockUseCase) AIStatus(ctx context.Context) openai.Status {
	return m.status
}

const testSecret = "test-secret"

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	mw := middleware.New(l, token.NewManager(testSecret, 30), middleware.Config{})

	r := gin.New()
	RegisterRoutes(r.Group("/api/chat"), New(l, uc), mw)
	return r
}

func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := token.NewManager(testSecret, 30).Generate(userID, "Ana", "ana@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + tok
}

func TestSendMessageHandler(t *testing.T) {
	t.Run("Requires Auth", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(`{"message": "hola"}`))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Rejects Bad Token", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(`{"message": "hola"}`))
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Happy Path", func(t *testing.T) {
		uc := &mockUseCase{sendOut: chat.SendMessageOutput{
			Response:  "respuesta",
			Source:    model.SourceAssistant,
			Timestamp: time.Now(),
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(`{"message": "hola"}`))
		req.Header.Set("Authorization", bearerFor(t, "u1"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.gotScope.UserID != "u1" {
			t.Errorf("scope not propagated, got %+v", uc.gotScope)
		}
		if uc.gotInput.BearerToken == "" {
			t.Error("bearer token not forwarded to use case")
		}

		var body struct {
			Data sendMessageResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("parse body: %v", err)
		}
		if body.Data.Response != "respuesta" || body.Data.Source != "assistant" {
			t.Errorf("unexpected body: %+v", body.Data)
		}
	})

	t.Run("Missing Message", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(`{}`))
		req.Header.Set("Authorization", bearerFor(t, "u1"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Domain Validation Error", func(t *testing.T) {
		uc := &mockUseCase{sendErr: chat.ErrMessageTooLong}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(`{"message": "hola"}`))
		req.Header.Set("Authorization", bearerFor(t, "u1"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestSendTestHandler(t *testing.T) {
	uc := &mockUseCase{sendOut: chat.SendMessageOutput{Response: "respuesta", Source: model.SourceStatic}}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat/test", strings.NewReader(`{"message": "hola"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("test endpoint must not require auth, got %d", w.Code)
	}
}

func TestHistoryHandler(t *testing.T) {
	uc := &mockUseCase{historyOut: chat.HistoryOutput{
		Messages: []model.ChatMessage{
			{ID: "m1", Role: model.RoleUser, Content: "hola", CreatedAt: time.Now()},
			{ID: "m2", Role: model.RoleAssistant, Content: "buenas", Source: model.SourceAssistant, CreatedAt: time.Now()},
		},
		Count: 2,
	}}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?limit=5", nil)
	req.Header.Set("Authorization", bearerFor(t, "u1"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data historyResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Data.Count != 2 || body.Data.Messages[0].ID != "m1" {
		t.Errorf("unexpected body: %+v", body.Data)
	}
}

func TestSessionHandler(t *testing.T) {
	now := time.Now()
	uc := &mockUseCase{sessionOut: model.ChatSession{UserID: "u1", MessageCount: 4, StartedAt: now, LastActiveAt: now}}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/session", nil)
	req.Header.Set("Authorization", bearerFor(t, "u1"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Timestamps marshal through response.DateTime, so decode them as the
	// formatted strings clients actually see.
	var body struct {
		Data struct {
			UserID       string  `json:"user_id"`
			MessageCount int     `json:"message_count"`
			StartedAt    *string `json:"started_at"`
			LastActiveAt *string `json:"last_active_at"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Data.MessageCount != 4 || body.Data.StartedAt == nil {
		t.Errorf("unexpected body: %+v", body.Data)
	}
	if body.Data.StartedAt != nil {
		if _, err := time.Parse(response.DateTimeFormat, *body.Data.StartedAt); err != nil {
			t.Errorf("started_at not in datetime format: %q", *body.Data.StartedAt)
		}
	}
}

func TestClearHistoryHandler(t *testing.T) {
	t.Run("Requires Auth", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/chat/history", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Clears", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/chat/history", nil)
		req.Header.Set("Authorization", bearerFor(t, "u1"))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !uc.cleared || uc.gotScope.UserID != "u1" {
			t.Errorf("clear not delegated with scope, got %+v", uc.gotScope)
		}
	})

	t.Run("Store Failure Is 500", func(t *testing.T) {
		uc := &mockUseCase{clearErr: chat.ErrEmptyMessage}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/chat/history", nil)
		req.Header.Set("Authorization", bearerFor(t, "u1"))
		r.ServeHTTP(w, req)

		if w.Code == http.StatusOK {
			t.Error("a failed clear must not report success")
		}
	})
}

func TestSummaryHandler(t *testing.T) {
	uc := &mockUseCase{summaryOut: chat.SummaryOutput{
		Summary:       "- El usuario preguntó por el MERVAL.",
		MessagesCount: 4,
		GeneratedAt:   time.Now(),
	}}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/summary", nil)
	req.Header.Set("Authorization", bearerFor(t, "u1"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data struct {
			Summary       string `json:"summary"`
			MessagesCount int    `json:"messages_count"`
			GeneratedAt   string `json:"generated_at"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Data.MessagesCount != 4 || body.Data.Summary == "" {
		t.Errorf("unexpected body: %+v", body.Data)
	}
	if _, err := time.Parse(response.DateTimeFormat, body.Data.GeneratedAt); err != nil {
		t.Errorf("generated_at not in datetime format: %q", body.Data.GeneratedAt)
	}
}

func TestSentimentHandler(t *testing.T) {
	t.Run("Classifies", func(t *testing.T) {
		uc := &mockUseCase{sentiment: responder.Sentiment{Sentiment: "positive", Confidence: 0.9, MarketEmotion: "optimistic"}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat/analyze-sentiment", strings.NewReader(`{"text": "El MERVAL subió"}`))
		req.Header.Set("Authorization", bearerFor(t, "u1"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Data responder.Sentiment `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("parse body: %v", err)
		}
		if body.Data.Sentiment != "positive" {
			t.Errorf("unexpected body: %+v", body.Data)
		}
	})

	t.Run("Missing Text", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat/analyze-sentiment", strings.NewReader(`{}`))
		req.Header.Set("Authorization", bearerFor(t, "u1"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestAIStatusHandler(t *testing.T) {
	uc := &mockUseCase{status: openai.Status{Configured: true, Available: true}}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/ai-status", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if !body.Data["openai_configured"] || body.Data["assistant_available"] {
		t.Errorf("unexpected status body: %v", body.Data)
	}
}
