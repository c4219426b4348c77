package usecase

import (
	"context"
	"time"

	"merval-chat-service/internal/chat/repository"
	"merval-chat-service/internal/model"
	"merval-chat-service/internal/responder"
	"merval-chat-service/pkg/openai"
)

// Mock logger for testing
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

// Mock store recording what was persisted.
type mockStore struct {
	history     []model.ChatMessage
	historyErr  error
	appended    []model.ChatMessage
	appendErr   error
	session     model.ChatSession
	sessionErr  error
	touchDeltas []int
	touchErr    error
	cleared     []string
	clearErr    error
}

func (m *mockStore) AppendMessage(ctx context.Context, msg model.ChatMessage) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, msg)
	return nil
}

func (m *mockStore) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	if limit > 0 && len(m.history) > limit {
		return m.history[len(m.history)-limit:], nil
	}
	return m.history, nil
}

func (m *mockStore) TouchSession(ctx context.Context, userID string, delta int, at time.Time) error {
	if m.touchErr != nil {
		return m.touchErr
	}
	m.touchDeltas = append(m.touchDeltas, delta)
	return nil
}

func (m *mockStore) Session(ctx context.Context, userID string) (model.ChatSession, error) {
	if m.sessionErr != nil {
		return model.ChatSession{}, m.sessionErr
	}
	return m.session, nil
}

func (m *mockStore) Clear(ctx context.Context, userID string) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = append(m.cleared, userID)
	return nil
}

func (m *mockStore) Ping(ctx context.Context) error { return nil }
func (m *mockStore) Name() string                   { return "mock" }

var _ repository.Store = (*mockStore)(nil)

// Mock fetcher returning a fixed context.
type mockFetcher struct {
	result *model.UserContext
}

func (m *mockFetcher) Fetch(ctx context.Context, userID, bearerToken string) *model.UserContext {
	return m.result
}

// Mock responder returning fixed results and recording its inputs.
type mockResponder struct {
	reply        responder.Reply
	summary      string
	summaryErr   error
	sentiment    responder.Sentiment
	sentimentErr error
	status       openai.Status
	gotMessage   string
	gotMessages  []openai.Message
	gotText      string
}

func (m *mockResponder) Respond(ctx context.Context, message string, msgs []openai.Message) responder.Reply {
	m.gotMessage = message
	m.gotMessages = msgs
	return m.reply
}

func (m *mockResponder) Summarize(ctx context.Context, history []model.ChatMessage) (string, error) {
	return m.summary, m.summaryErr
}

func (m *mockResponder) Sentiment(ctx context.Context, text string) (responder.Sentiment, error) {
	m.gotText = text
	return m.sentiment, m.sentimentErr
}

func (m *mockResponder) Status(ctx context.Context) openai.Status {
	return m.status
}
