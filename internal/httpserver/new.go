package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "merval-chat-service/internal/chat/delivery/http"
	"merval-chat-service/internal/middleware"
	"merval-chat-service/pkg/log"
	"merval-chat-service/pkg/openai"
)

// Pinger is what the health endpoints need from the storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

// AIStatusReporter is what the health endpoint needs from the response chain.
type AIStatusReporter interface {
	Status(ctx context.Context) openai.Status
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Chat domain
	chatHandler chatHTTP.Handler
	middleware  middleware.Middleware

	// Health reporting
	store Pinger
	ai    AIStatusReporter
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Chat domain
	ChatHandler chatHTTP.Handler
	Middleware  middleware.Middleware

	// Health reporting
	Store Pinger
	AI    AIStatusReporter
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		chatHandler: cfg.ChatHandler,
		middleware:  cfg.Middleware,
		store:       cfg.Store,
		ai:          cfg.AI,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.ai == nil {
		return errors.New("ai status reporter is required")
	}
	return nil
}
