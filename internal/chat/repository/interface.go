package repository

import (
	"context"
	"errors"
	"time"

	"merval-chat-service/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store is the interface for conversation persistence. Implementations
// exist for MongoDB, Redis and in-process memory; the service picks one at
// startup and degrades down the list when a backend is not configured.
type Store interface {
	// AppendMessage stores one message of a conversation.
	AppendMessage(ctx context.Context, msg model.ChatMessage) error

	// History returns the user's most recent messages in chronological
	// order, capped at limit.
	History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)

	// TouchSession records conversation activity: delta newly stored
	// messages at time at. Creates the session on first touch.
	TouchSession(ctx context.Context, userID string, delta int, at time.Time) error

	// Session returns the user's session summary or ErrNotFound.
	Session(ctx context.Context, userID string) (model.ChatSession, error)

	// Clear removes the user's messages and session. Clearing a user with
	// no history is not an error.
	Clear(ctx context.Context, userID string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Name identifies the backend ("mongodb", "redis", "memory") for
	// health reporting.
	Name() string
}
