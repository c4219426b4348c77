package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"merval-chat-service/internal/chat/repository"
	"merval-chat-service/internal/model"
)

const (
	messagesCollection = "chat_messages"
	sessionsCollection = "chat_sessions"

	connectTimeout = 10 * time.Second
)

// Config holds MongoDB store configuration.
type Config struct {
	URL      string
	Database string
}

// Store persists conversations in MongoDB. This is the durable backend:
// history survives restarts and carries no TTL.
type Store struct {
	client   *mongo.Client
	messages *mongo.Collection
	sessions *mongo.Collection
}

// New connects to MongoDB, verifies the connection and prepares the
// history index.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mongodb URL is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongodb database is required")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(cfg.Database)
	s := &Store{
		client:   client,
		messages: db.Collection(messagesCollection),
		sessions: db.Collection(sessionsCollection),
	}

	// History is always read per user, newest first.
	_, err = s.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create history index: %w", err)
	}

	return s, nil
}

func (s *Store) AppendMessage(ctx context.Context, msg model.ChatMessage) error {
	if _, err := s.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

func (s *Store) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.messages.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer cur.Close(ctx)

	var newestFirst []model.ChatMessage
	if err := cur.All(ctx, &newestFirst); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}

	msgs := make([]model.ChatMessage, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		msgs = append(msgs, newestFirst[i])
	}
	return msgs, nil
}

func (s *Store) TouchSession(ctx context.Context, userID string, delta int, at time.Time) error {
	update := bson.M{
		"$inc":         bson.M{"message_count": delta},
		"$set":         bson.M{"last_active_at": at.UTC()},
		"$setOnInsert": bson.M{"started_at": at.UTC()},
	}
	_, err := s.sessions.UpdateByID(ctx, userID, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

func (s *Store) Session(ctx context.Context, userID string) (model.ChatSession, error) {
	var sess model.ChatSession
	err := s.sessions.FindOne(ctx, bson.M{"_id": userID}).Decode(&sess)
	if err == mongo.ErrNoDocuments {
		return model.ChatSession{}, repository.ErrNotFound
	}
	if err != nil {
		return model.ChatSession{}, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	if _, err := s.messages.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}
	if _, err := s.sessions.DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Name() string { return "mongodb" }

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
