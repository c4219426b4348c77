package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"merval-chat-service/config"
	chatHTTP "merval-chat-service/internal/chat/delivery/http"
	"merval-chat-service/internal/chat/repository"
	memoryStore "merval-chat-service/internal/chat/repository/memory"
	mongoStore "merval-chat-service/internal/chat/repository/mongodb"
	redisStore "merval-chat-service/internal/chat/repository/redis"
	"merval-chat-service/internal/chat/usecase"
	"merval-chat-service/internal/httpserver"
	"merval-chat-service/internal/middleware"
	"merval-chat-service/internal/responder"
	"merval-chat-service/internal/userctx"
	"merval-chat-service/pkg/log"
	"merval-chat-service/pkg/openai"
	"merval-chat-service/pkg/token"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Merval chat service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Conversation store: MongoDB, then Redis, then process memory.
	store := pickStore(ctx, logger, cfg)
	logger.Infof(ctx, "Conversation store: %s", store.Name())

	// 4. OpenAI client (optional; the responder degrades without it)
	var aiClient openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		client, aiErr := openai.New(openai.Config{
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.Model,
			AssistantID: cfg.OpenAI.AssistantID,
		})
		if aiErr != nil {
			logger.Warnf(ctx, "OpenAI client not available: %v", aiErr)
		} else {
			aiClient = client
			logger.Infof(ctx, "OpenAI client initialized (model %s)", client.Model())
		}
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY not set, serving canned replies only")
	}
	chain := responder.NewChain(logger, aiClient)

	// 5. User context fetcher
	backendTimeout, err := time.ParseDuration(cfg.Backend.Timeout)
	if err != nil {
		backendTimeout = 5 * time.Second
	}
	backendClient, err := userctx.NewClient(logger, userctx.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: backendTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize backend client: ", err)
		return
	}
	fetcher := userctx.NewCachedFetcher(logger, backendClient)

	// 6. Chat domain
	chatUC := usecase.New(logger, store, fetcher, chain, usecase.Config{
		HistoryWindow:    cfg.Chat.HistoryWindow,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	})
	chatHandler := chatHTTP.New(logger, chatUC)

	// 7. Auth + rate limiting
	jwtManager := token.NewManager(cfg.Auth.JWTSecretKey, cfg.Auth.ExpireMinutes)
	mw := middleware.New(logger, jwtManager, middleware.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitPerMin:  cfg.RateLimit.PerMinute,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		Middleware:  mw,
		Store:       store,
		AI:          chain,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// pickStore connects to the first configured backend that answers. History
// quality degrades down the list but chat never stops working.
func pickStore(ctx context.Context, logger log.Logger, cfg *config.Config) repository.Store {
	if cfg.MongoDB.URL != "" {
		store, err := mongoStore.New(ctx, mongoStore.Config{
			URL:      cfg.MongoDB.URL,
			Database: cfg.MongoDB.Database,
		})
		if err == nil {
			return store
		}
		logger.Warnf(ctx, "MongoDB not available, falling back: %v", err)
	}

	if cfg.Redis.URL != "" {
		store, err := redisStore.New(ctx, redisStore.Config{
			URL: cfg.Redis.URL,
			TTL: time.Duration(cfg.Chat.HistoryTTLHours) * time.Hour,
		})
		if err == nil {
			return store
		}
		logger.Warnf(ctx, "Redis not available, falling back: %v", err)
	}

	logger.Warn(ctx, "No persistent store configured, history kept in process memory")
	return memoryStore.New()
}
