package memory

import (
	"context"
	"sync"
	"time"

	"merval-chat-service/internal/chat/repository"
	"merval-chat-service/internal/model"
)

// maxStoredMessages caps per-user history so a long-running process
// doesn't grow without bound.
const maxStoredMessages = 100

// Store keeps conversations in process memory. It is the last-resort
// backend: history survives only as long as the process.
type Store struct {
	mu       sync.RWMutex
	messages map[string][]model.ChatMessage
	sessions map[string]model.ChatSession
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		messages: make(map[string][]model.ChatMessage),
		sessions: make(map[string]model.ChatSession),
	}
}

func (s *Store) AppendMessage(ctx context.Context, msg model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := append(s.messages[msg.UserID], msg)
	if len(msgs) > maxStoredMessages {
		msgs = msgs[len(msgs)-maxStoredMessages:]
	}
	s.messages[msg.UserID] = msgs
	return nil
}

func (s *Store) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.messages[userID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *Store) TouchSession(ctx context.Context, userID string, delta int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = model.ChatSession{UserID: userID, StartedAt: at}
	}
	sess.MessageCount += delta
	sess.LastActiveAt = at
	s.sessions[userID] = sess
	return nil
}

func (s *Store) Session(ctx context.Context, userID string) (model.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return model.ChatSession{}, repository.ErrNotFound
	}
	return sess, nil
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, userID)
	delete(s.sessions, userID)
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Name() string { return "memory" }
