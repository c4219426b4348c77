package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"merval-chat-service/internal/chat/repository"
	"merval-chat-service/internal/model"
)

const (
	messagesKeyPrefix = "chat:messages:"
	sessionKeyPrefix  = "chat:session:"

	// maxStoredMessages caps the per-user list; older entries are trimmed.
	maxStoredMessages = 100
)

// Config holds Redis store configuration.
type Config struct {
	URL string // redis:// or rediss:// connection URL
	TTL time.Duration
}

// Store persists conversations in Redis. Messages live in a per-user list,
// newest first; sessions in a per-user hash. Both expire after the TTL so
// history fades out on its own.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("redis URL is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}

	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{client: client, ttl: cfg.TTL}, nil
}

func (s *Store) AppendMessage(ctx context.Context, msg model.ChatMessage) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	key := messagesKeyPrefix + msg.UserID
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, raw)
	pipe.LTrim(ctx, key, 0, maxStoredMessages-1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

func (s *Store) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 || limit > maxStoredMessages {
		limit = maxStoredMessages
	}

	raws, err := s.client.LRange(ctx, messagesKeyPrefix+userID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	// The list is newest first; reverse into chronological order.
	msgs := make([]model.ChatMessage, 0, len(raws))
	for i := len(raws) - 1; i >= 0; i-- {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(raws[i]), &msg); err != nil {
			continue // skip entries written by older versions
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (s *Store) TouchSession(ctx context.Context, userID string, delta int, at time.Time) error {
	key := sessionKeyPrefix + userID
	pipe := s.client.TxPipeline()
	pipe.HSetNX(ctx, key, "started_at", at.UTC().Format(time.RFC3339))
	pipe.HIncrBy(ctx, key, "message_count", int64(delta))
	pipe.HSet(ctx, key, "last_active_at", at.UTC().Format(time.RFC3339))
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

func (s *Store) Session(ctx context.Context, userID string) (model.ChatSession, error) {
	fields, err := s.client.HGetAll(ctx, sessionKeyPrefix+userID).Result()
	if err != nil {
		return model.ChatSession{}, fmt.Errorf("failed to load session: %w", err)
	}
	if len(fields) == 0 {
		return model.ChatSession{}, repository.ErrNotFound
	}

	sess := model.ChatSession{UserID: userID}
	if v, err := strconv.Atoi(fields["message_count"]); err == nil {
		sess.MessageCount = v
	}
	if t, err := time.Parse(time.RFC3339, fields["started_at"]); err == nil {
		sess.StartedAt = t
	}
	if t, err := time.Parse(time.RFC3339, fields["last_active_at"]); err == nil {
		sess.LastActiveAt = t
	}
	return sess, nil
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, messagesKeyPrefix+userID, sessionKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Name() string { return "redis" }

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
