package model

import "time"

// Role identifies who produced a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ResponseSource identifies which stage of the response pipeline produced
// an assistant reply.
type ResponseSource string

const (
	SourceAssistant  ResponseSource = "assistant"
	SourceCompletion ResponseSource = "completion"
	SourceStatic     ResponseSource = "static"
)

// ChatMessage is one stored message of a user's conversation history.
type ChatMessage struct {
	ID        string         `json:"id" bson:"_id"`
	UserID    string         `json:"user_id" bson:"user_id"`
	Role      Role           `json:"role" bson:"role"`
	Content   string         `json:"content" bson:"content"`
	Source    ResponseSource `json:"source,omitempty" bson:"source,omitempty"` // empty for user messages
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// ChatSession summarizes a user's conversation state.
type ChatSession struct {
	UserID       string    `json:"user_id" bson:"_id"`
	MessageCount int       `json:"message_count" bson:"message_count"`
	StartedAt    time.Time `json:"started_at" bson:"started_at"`
	LastActiveAt time.Time `json:"last_active_at" bson:"last_active_at"`
}
